package logging

import (
	"log/slog"
	"strings"
	"time"
)

type infoField struct {
	label string
	value string
}

// shown first, in this order, when present
var infoHighlightKeys = []string{
	FieldEventType,
	FieldDecisionType,
	"decision_result",
	"decision_reason",
	"skin_name",
	"mania_count",
	"key_counts",
	"section_count",
	"elapsed",
	"error",
	FieldErrorHint,
	FieldImpact,
}

const maxInfoValueLen = 120

// selectInfoFields returns formatted info-level fields and a count of entries
// held back from the console view.
func selectInfoFields(attrs []kv) ([]infoField, int) {
	if len(attrs) == 0 {
		return nil, 0
	}
	used := make([]bool, len(attrs))
	result := make([]infoField, 0, len(attrs))
	hidden := 0

	take := func(idx int) {
		used[idx] = true
		attr := attrs[idx]
		if skipInfoKey(attr.key) {
			return
		}
		if isDebugOnlyKey(attr.key) {
			hidden++
			return
		}
		value := formatInfoValue(attr.key, attr.value)
		if attr.key != "error" && len(value) > maxInfoValueLen {
			hidden++
			return
		}
		result = append(result, infoField{label: displayLabel(attr.key), value: value})
	}

	for _, key := range infoHighlightKeys {
		for idx, attr := range attrs {
			if !used[idx] && attr.key == key {
				take(idx)
				break
			}
		}
	}
	for idx := range attrs {
		if !used[idx] {
			take(idx)
		}
	}
	return result, hidden
}

func formatInfoValue(key string, v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		if v.Bool() {
			return "yes"
		}
		return "no"
	case slog.KindDuration:
		return v.Duration().Round(time.Millisecond).String()
	}
	if key == "error" {
		return strings.TrimSpace(attrString(v))
	}
	return formatValue(v)
}

func skipInfoKey(key string) bool {
	switch key {
	case "", FieldComponent, FieldPath, FieldSection:
		return true
	}
	return false
}

func isDebugOnlyKey(key string) bool {
	switch key {
	case FieldCorrelationID, "section_index", "event_op":
		return true
	}
	return strings.HasSuffix(key, "_id")
}

func displayLabel(key string) string {
	switch key {
	case FieldEventType:
		return "Event"
	case FieldDecisionType, "decision_result":
		return "Decision"
	case "decision_reason":
		return "Reason"
	case FieldErrorHint:
		return "Hint"
	case "skin_name":
		return "Skin"
	case "mania_count":
		return "Mania Configs"
	case "key_counts":
		return "Key Counts"
	case "section_count":
		return "Sections"
	default:
		return titleizeKey(key)
	}
}

func titleizeKey(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '_' || r == '-' || r == '.'
	})
	for i, part := range parts {
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}
