// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The map types below back JSONB columns. They implement driver.Valuer and
// sql.Scanner so squirrel statements can bind and scan them directly.

type FeatureMap map[string]FeatureState

func (m FeatureMap) Value() (driver.Value, error) {
	return jsonValue(m)
}

func (m *FeatureMap) Scan(src any) error {
	return jsonScan(src, m)
}

type CountMap map[string]int64

func (m CountMap) Value() (driver.Value, error) {
	return jsonValue(m)
}

func (m *CountMap) Scan(src any) error {
	return jsonScan(src, m)
}

type JSONMap map[string]any

func (m JSONMap) Value() (driver.Value, error) {
	return jsonValue(m)
}

func (m *JSONMap) Scan(src any) error {
	return jsonScan(src, m)
}

type AdminUsers []AdminUser

func (a AdminUsers) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

func (a *AdminUsers) Scan(src any) error {
	return jsonScan(src, a)
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	return jsonScan(src, l)
}

func jsonValue(v any) (driver.Value, error) {
	if v == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v)
}

func jsonScan(src, dst any) error {
	if src == nil {
		return nil
	}
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("unsupported scan source %T", src)
	}
}
