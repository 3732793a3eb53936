package jsonlib

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// Flatten keeps a JSON object's declared fields in Defined (a struct)
// and every other key in Extra, so that records coming from a CMS
// survive a round trip with fields this service doesn't know about.
// Declared fields win over extras of the same name when marshalling
type Flatten[T any] struct {
	Defined T
	Extra   map[string]any
}

func NewFlatten[T any](defined T) Flatten[T] {
	return Flatten[T]{
		Defined: defined,
		Extra:   map[string]any{},
	}
}

func (f Flatten[T]) MarshalJSON() ([]byte, error) {
	outputMap := map[string]any{}
	for k, v := range f.Extra {
		outputMap[k] = v
	}

	definedMap, err := StructToMap(f.Defined)
	if err != nil {
		return nil, errors.Wrap(err, "Could not convert defined fields into a map")
	}

	for k, v := range definedMap {
		outputMap[k] = v
	}

	return json.Marshal(outputMap)
}

func (f *Flatten[T]) UnmarshalJSON(b []byte) error {
	defined := *new(T)
	if err := json.Unmarshal(b, &defined); err != nil {
		return errors.Wrap(err, "Could not unmarshal json data into defined fields")
	}

	definedMap, err := StructToMap(defined)
	if err != nil {
		return errors.Wrap(err, "Could not convert defined fields to a map")
	}

	objectMap := map[string]any{}
	if err := json.Unmarshal(b, &objectMap); err != nil {
		return errors.Wrap(err, "Could not unmarshal json data into a map")
	}

	extras := map[string]any{}
	for k, v := range objectMap {
		if _, isDefined := definedMap[k]; !isDefined {
			extras[k] = v
		}
	}

	*f = Flatten[T]{
		Defined: defined,
		Extra:   extras,
	}

	return nil
}

// Lookup finds a key among the extras first and the declared fields second,
// using their JSON names
func (f Flatten[T]) Lookup(key string) (any, bool) {
	if v, ok := f.Extra[key]; ok {
		return v, true
	}

	definedMap, err := StructToMap(f.Defined)
	if err != nil {
		return nil, false
	}

	v, ok := definedMap[key]
	return v, ok
}

func (f Flatten[T]) ToMap() (map[string]any, error) {
	return StructToMap(f)
}

func (f *Flatten[T]) FromMap(m map[string]any) error {
	newObj, err := MapToStruct[Flatten[T]](m)
	if err != nil {
		return errors.Wrap(err, "Could not convert map to struct")
	}

	*f = newObj
	return nil
}

func StructToMap(s any) (map[string]any, error) {
	jsonBytes, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "Could not marshal struct")
	}

	fieldsMap := map[string]any{}
	if err := json.Unmarshal(jsonBytes, &fieldsMap); err != nil {
		return nil, errors.Wrap(err, "Could not unmarshal struct into a map")
	}

	return fieldsMap, nil
}

func MapToStruct[T any](m map[string]any) (T, error) {
	t := new(T)
	jsonBytes, err := json.Marshal(m)
	if err != nil {
		return *t, errors.Wrap(err, "Could not marshal map")
	}

	if err := json.Unmarshal(jsonBytes, t); err != nil {
		return *t, errors.Wrap(err, "Could not unmarshal json map to object")
	}

	return *t, nil
}
