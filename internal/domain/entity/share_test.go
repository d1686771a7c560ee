package entity

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestShareSnapshotJSONFieldNames(t *testing.T) {
	idea := "Why remote work sticks"
	in := ShareSnapshot{
		Topic:        "remote work",
		Ideas:        []string{"Why remote work sticks", "Async first"},
		SelectedIdea: &idea,
		Outline:      []string{"Intro", "Body"},
	}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal map: %v", err)
	}
	for _, k := range []string{"topic", "ideas", "selectedIdea", "outline"} {
		if _, ok := fields[k]; !ok {
			t.Fatalf("missing field %q in %s", k, raw)
		}
	}

	var out ShareSnapshot
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n got: %#v\nwant: %#v", out, in)
	}
}

func TestHasSelection(t *testing.T) {
	blank := "  "
	idea := "x"
	if (&ShareSnapshot{}).HasSelection() {
		t.Fatalf("nil selection reported as selected")
	}
	if (&ShareSnapshot{SelectedIdea: &blank}).HasSelection() {
		t.Fatalf("blank selection reported as selected")
	}
	if !(&ShareSnapshot{SelectedIdea: &idea}).HasSelection() {
		t.Fatalf("selection not reported")
	}
}
