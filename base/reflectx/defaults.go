// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides the reflection helpers used to apply
// struct tag defaults to configuration objects.
package reflectx

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/chart/base/errors"
)

// SetFromDefaultTags sets the values of fields of the given struct
// pointer from their `default:"..."` struct tags. Struct fields without
// a default are recursed into. Slice and map defaults are given in JSON,
// with single quotes accepted in place of double quotes.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := derefValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, got %v", val.Type())
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if derefType(f.Type).Kind() == reflect.Struct && (!ok || def == "") {
			if f.Type.Kind() == reflect.Pointer && fv.IsNil() {
				continue
			}
			errs = append(errs, SetFromDefaultTags(addr(fv).Interface()))
			continue
		}
		if !ok || def == "" {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value from its string
// representation.
func SetFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice, reflect.Map, reflect.Struct:
		s = strings.ReplaceAll(s, `'`, `"`)
		return json.Unmarshal([]byte(s), addr(v).Interface())
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return SetFromString(v.Elem(), s)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}

// derefType strips all pointers from the type.
func derefType(typ reflect.Type) reflect.Type {
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ
}

// derefValue strips all pointers from the value.
func derefValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	return v
}

// addr returns a pointer to v, which is v itself if it is a pointer.
// An unaddressable v is copied.
func addr(v reflect.Value) reflect.Value {
	switch {
	case v.Kind() == reflect.Pointer:
		return v
	case v.CanAddr():
		return v.Addr()
	}
	pv := reflect.New(v.Type())
	pv.Elem().Set(v)
	return pv
}
