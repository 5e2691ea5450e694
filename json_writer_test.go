package csvt

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", "one")
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	// Fields keep their append order, they are not sorted.
	if got, want := string(data), `{"b":2,"a":"one"}`; got != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestJSONObjectWriterOptional(t *testing.T) {
	var w jsonObjectWriter
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("set", "value")
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if got, want := string(data), `{"set":"value"}`; got != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	data, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("MarshalJSON = %s, want {}", data)
	}
}

func TestJSONObjectWriterError(t *testing.T) {
	var w jsonObjectWriter
	w.Append("bad", func() {}) // functions cannot marshal
	w.Append("good", 1)
	if _, err := w.MarshalJSON(); err == nil {
		t.Error("MarshalJSON = nil, want the first marshal error")
	}
}
