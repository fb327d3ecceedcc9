// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package entitlement

import (
	"github.com/canonical/entitlement-service/internal/types"
)

type defaultGrant struct {
	action string
	role   string
}

// defaultPermissionSeed is the fixed grant set applied to every new tenant for
// the core features. Synchronization later only toggles the active flag of
// these rows; it never grows the set.
var defaultPermissionSeed = map[string][]defaultGrant{
	"userManagement": {
		{types.ActionManage, types.RoleAdmin},
		{types.ActionRead, types.RoleManager},
	},
	"feeManagement": {
		{types.ActionManage, types.RoleAdmin},
		{types.ActionCreate, types.RoleManager},
		{types.ActionRead, types.RoleManager},
	},
	"attendance": {
		{types.ActionCreate, types.RoleTeacher},
		{types.ActionRead, types.RoleTeacher},
		{types.ActionUpdate, types.RoleTeacher},
		{types.ActionRead, types.RoleManager},
	},
	"reports": {
		{types.ActionCreate, types.RoleAdmin},
		{types.ActionRead, types.RoleAdmin},
		{types.ActionRead, types.RoleManager},
		{types.ActionRead, types.RoleTeacher},
	},
}
