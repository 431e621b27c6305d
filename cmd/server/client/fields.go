package client

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

var editLabel string

var getFieldsCmd = &cobra.Command{
	Use:   "get-fields [sheet-id] [field...]",
	Short: "Read field values from a sheet",
	Long: `Read field values from a sheet. With no fields every field is returned. Examples:

  get-fields sheet_123
  get-fields sheet_123 gcs.ba.ST gcs.ba.lift.BasicLift`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := make([]any, 0, len(args)-1)
		for _, f := range args[1:] {
			fields = append(fields, f)
		}
		return call(v1alpha1.MethodGetFields, map[string]any{
			v1alpha1.KeySheetID: args[0],
			v1alpha1.KeyFields:  fields,
		})
	},
}

var setFieldCmd = &cobra.Command{
	Use:   "set-field [sheet-id] [field] [value]",
	Short: "Write one field of a sheet",
	Long: `Write one field of a sheet. Values are read as JSON when they parse, otherwise as text. Examples:

  set-field sheet_123 gcs.ba.ST 12
  set-field sheet_123 gcs.ba.SPEED 5.75
  set-field sheet_123 gcs.IncludePunch false`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return call(v1alpha1.MethodApplyEdits, map[string]any{
			v1alpha1.KeySheetID: args[0],
			v1alpha1.KeyLabel:   editLabel,
			v1alpha1.KeyEdits: []any{map[string]any{
				v1alpha1.KeyField: args[1],
				v1alpha1.KeyValue: parseValue(args[2]),
			}},
		})
	},
}

func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}

func init() {
	setFieldCmd.Flags().StringVar(&editLabel, "label", "", "Undo label for the edit")
}
