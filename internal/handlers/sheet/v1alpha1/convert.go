package v1alpha1

import (
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/character"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	sheetrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/sheet"
)

// Request and response keys
const (
	KeySheetID     = "sheet_id"
	KeyOwnerID     = "owner_id"
	KeyName        = "name"
	KeyData        = "data"
	KeySheet       = "sheet"
	KeySheets      = "sheets"
	KeyFields      = "fields"
	KeyValues      = "values"
	KeyLabel       = "label"
	KeyEdits       = "edits"
	KeyField       = "field"
	KeyValue       = "value"
	KeyChanges     = "changes"
	KeyEquipment   = "equipment"
	KeyEquipmentID = "equipment_id"
	KeyLocation    = "location"
	KeyParentID    = "parent_id"
	KeyAdvantage   = "advantage"
	KeyEditName    = "edit_name"
	KeyCanUndo     = "can_undo"
	KeyCanRedo     = "can_redo"
	KeyKind        = "kind"
	KeyNotation    = "notation"
	KeyRolls       = "rolls"
	KeyTotal       = "total"
)

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

// decodeInto converts the object at key into dst through its JSON form
func decodeInto(s *structpb.Struct, key string, dst any) (bool, error) {
	v, ok := s.GetFields()[key]
	if !ok || v.GetStructValue() == nil {
		return false, nil
	}
	raw, err := v.GetStructValue().MarshalJSON()
	if err != nil {
		return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read "+key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid "+key)
	}
	return true, nil
}

// encode converts v into a Struct through its JSON form
func encode(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}

// wireValue renders a field value for the wire. Times are RFC 3339 strings; weights,
// money and dice use their text forms.
func wireValue(v any) (*structpb.Value, error) {
	switch t := v.(type) {
	case time.Time:
		return structpb.NewStringValue(t.UTC().Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return structpb.NewStringValue(t.String()), nil
	}
	value, err := structpb.NewValue(v)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported value %T", v)
	}
	return value, nil
}

func valuesToStruct(values map[string]any) (*structpb.Struct, error) {
	out := &structpb.Struct{Fields: make(map[string]*structpb.Value, len(values))}
	for k, v := range values {
		value, err := wireValue(v)
		if err != nil {
			return nil, err
		}
		out.Fields[k] = value
	}
	return out, nil
}

func changesToList(changes []character.Change) (*structpb.Value, error) {
	list := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(changes))}
	for _, ch := range changes {
		value, err := wireValue(ch.Value)
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				KeyField: structpb.NewStringValue(string(ch.Field)),
				KeyValue: value,
			},
		}))
	}
	return structpb.NewListValue(list), nil
}

func recordToValue(record *sheetrepo.Record) (*structpb.Value, error) {
	s, err := encode(record)
	if err != nil {
		return nil, err
	}
	return structpb.NewStructValue(s), nil
}
