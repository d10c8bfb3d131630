package validation

import "testing"

func TestRequiredWinsOverFormatRules(t *testing.T) {
	v := New(nil)
	schema := Schema{
		"name": {
			{Kind: Required},
			{Kind: Str},
			{Kind: Max, Max: 5},
		},
	}

	errs := v.Check(schema, map[string]interface{}{"name": ""}, nil)
	if errs["name"] != "Este campo es obligatorio" {
		t.Fatalf("expected required message, got %q", errs["name"])
	}

	errs = v.Check(schema, map[string]interface{}{"name": "demasiado largo"}, nil)
	if errs["name"] != "No debe superar los 5 caracteres" {
		t.Fatalf("expected max message, got %q", errs["name"])
	}

	errs = v.Check(schema, map[string]interface{}{"name": "corto"}, nil)
	if len(errs) != 0 {
		t.Fatalf("expected valid input, got %v", errs)
	}
}

func TestOptionalRulesSkipAbsentValues(t *testing.T) {
	v := New(nil)
	schema := Schema{
		"email": {
			{Kind: Email},
		},
		"height": {
			{Kind: Numeric},
		},
	}

	errs := v.Check(schema, map[string]interface{}{"email": nil, "height": (*float64)(nil)}, nil)
	if len(errs) != 0 {
		t.Fatalf("absent optional values should pass, got %v", errs)
	}

	errs = v.Check(schema, map[string]interface{}{"email": "no-es-correo", "height": "abc"}, nil)
	if errs["email"] == "" || errs["height"] == "" {
		t.Fatalf("present invalid values should fail, got %v", errs)
	}
}

func TestFormatRules(t *testing.T) {
	v := New(nil)
	schema := Schema{
		"date":      {{Kind: Date}},
		"count":     {{Kind: Integer}},
		"completed": {{Kind: Boolean}},
	}

	errs := v.Check(schema, map[string]interface{}{
		"date":      "2024-06-15",
		"count":     "42",
		"completed": true,
	}, nil)
	if len(errs) != 0 {
		t.Fatalf("expected valid input, got %v", errs)
	}

	errs = v.Check(schema, map[string]interface{}{
		"date":      "15/06/2024",
		"count":     "4.5",
		"completed": "quizás",
	}, nil)
	if len(errs) != 3 {
		t.Fatalf("expected three field errors, got %v", errs)
	}
}

func TestConfirmedComparesWhenPresent(t *testing.T) {
	v := New(nil)
	schema := Schema{
		"password": {
			{Kind: Required},
			{Kind: Confirmed},
		},
	}

	errs := v.Check(schema, map[string]interface{}{
		"password":              "secreto",
		"password_confirmation": "otra-cosa",
	}, nil)
	if errs["password"] != "La confirmación no coincide" {
		t.Fatalf("expected confirmation mismatch, got %v", errs)
	}

	errs = v.Check(schema, map[string]interface{}{
		"password":              "secreto",
		"password_confirmation": "secreto",
	}, nil)
	if len(errs) != 0 {
		t.Fatalf("matching confirmation should pass, got %v", errs)
	}
}

// Field valida en modo incremental y debe dar el mismo veredicto que Check
// para el mismo campo y valor.
func TestFieldAgreesWithCheck(t *testing.T) {
	v := New(nil)
	schema := Schema{
		"email": {
			{Kind: Required},
			{Kind: Email},
		},
		"password": {
			{Kind: Required},
			{Kind: Confirmed},
		},
	}

	cases := []struct {
		field string
		value interface{}
	}{
		{"email", "valido@museo.local"},
		{"email", "invalido"},
		{"email", ""},
		{"password", "secreto"},
	}

	for _, tc := range cases {
		fieldOK, _ := v.Field(schema, tc.field, tc.value, nil)
		errs := v.Check(Schema{tc.field: schema[tc.field]}, map[string]interface{}{tc.field: tc.value}, nil)
		checkOK := len(errs) == 0
		if fieldOK != checkOK {
			t.Fatalf("field %s value %v: incremental verdict %v, full verdict %v", tc.field, tc.value, fieldOK, checkOK)
		}
	}
}

func TestFieldRejectsUnknownField(t *testing.T) {
	v := New(nil)
	ok, msg := v.Field(Schema{"name": {{Kind: Required}}}, "nope", "x", nil)
	if ok || msg == "" {
		t.Fatalf("unknown field should fail, got ok=%v msg=%q", ok, msg)
	}
}
