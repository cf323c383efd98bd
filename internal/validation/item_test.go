// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package validation

import (
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func validInput() ItemInput {
	return ItemInput{
		Name:        Text("Classic Smush"),
		Category:    Text("smush burgers"),
		Price:       Text("9.5"),
		Description: Text("Two patties"),
	}
}

func fieldsOf(err *RequestValidationError) []string {
	var out []string
	for _, e := range err.Errors() {
		out = append(out, e.Field())
	}
	return out
}

func TestItemValidator_Valid(t *testing.T) {
	t.Parallel()

	v := NewItemValidator(nil)
	item, err := v.Validate(validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID != 0 {
		t.Errorf("expected ID 0, got %d", item.ID)
	}
	if item.Name != "Classic Smush" || item.Category != "smush burgers" || item.Price != 9.5 {
		t.Errorf("unexpected item: %+v", item)
	}
	if item.Description != "Two patties" {
		t.Errorf("unexpected description: %q", item.Description)
	}
}

func TestItemValidator_Normalizes(t *testing.T) {
	t.Parallel()

	v := NewItemValidator([]string{"Smush Burgers", "Fries"})
	item, err := v.Validate(ItemInput{
		Name:     Text("  <b>Fish & Chips</b>  "),
		Category: Text(" smush BURGERS "),
		Price:    Text(" 0 "),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Name != "&lt;b&gt;Fish &amp; Chips&lt;&#x2F;b&gt;" {
		t.Errorf("name not trimmed and escaped: %q", item.Name)
	}
	if item.Category != "Smush Burgers" {
		t.Errorf("category not canonicalized: %q", item.Category)
	}
	if item.Price != 0 {
		t.Errorf("expected price 0, got %v", item.Price)
	}
	if item.Description != "" {
		t.Errorf("expected empty description, got %q", item.Description)
	}
}

func TestItemValidator_SingleFieldFailures(t *testing.T) {
	t.Parallel()

	v := NewItemValidator(nil)

	tests := []struct {
		name    string
		mutate  func(*ItemInput)
		field   string
		message string
	}{
		{"missing name", func(in *ItemInput) { in.Name = FlexString{} }, "name", "Name is required"},
		{"blank name", func(in *ItemInput) { in.Name = Text("   ") }, "name", "Name is required"},
		{"long name", func(in *ItemInput) { in.Name = Text(strings.Repeat("a", 101)) }, "name", "Name must be at most 100 characters"},
		{"unknown category", func(in *ItemInput) { in.Category = Text("pizza") }, "category", "Category must be one of: " + strings.Join(DefaultCategories, ", ")},
		{"missing price", func(in *ItemInput) { in.Price = FlexString{} }, "price", "Price is required"},
		{"text price", func(in *ItemInput) { in.Price = Text("free") }, "price", "Price must be a valid number"},
		{"NaN price", func(in *ItemInput) { in.Price = Text("NaN") }, "price", "Price must be a valid number"},
		{"negative price", func(in *ItemInput) { in.Price = Text("-1") }, "price", "Price must be between 0 and 200"},
		{"high price", func(in *ItemInput) { in.Price = Text("200.5") }, "price", "Price must be between 0 and 200"},
		{"long description", func(in *ItemInput) { in.Description = Text(strings.Repeat("d", 501)) }, "description", "Description must be at most 500 characters"},
		{"invalid utf-8 name", func(in *ItemInput) { in.Name = Text("Bad\xffName") }, "name", "Name must be valid text"},
		{"invalid utf-8 category", func(in *ItemInput) { in.Category = Text("fries\xc3") }, "category", "Category must be valid text"},
		{"invalid utf-8 description", func(in *ItemInput) { in.Description = Text("\xc3\x28") }, "description", "Description must be valid text"},
		{"hex float price", func(in *ItemInput) { in.Price = Text("0x1p3") }, "price", "Price must be a valid number"},
		{"underscore price", func(in *ItemInput) { in.Price = Text("0x_1p3") }, "price", "Price must be a valid number"},
		{"Inf price", func(in *ItemInput) { in.Price = Text("Inf") }, "price", "Price must be a valid number"},
		{"object name", func(in *ItemInput) { in.Name = FlexString{Set: true, Invalid: true} }, "name", "Name must be a text or number value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := validInput()
			tt.mutate(&in)

			_, err := v.Validate(in)
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", fieldsOf(err))
			}
			if errs[0].Field() != tt.field || errs[0].Error() != tt.message {
				t.Errorf("got %s: %q, want %s: %q", errs[0].Field(), errs[0].Error(), tt.field, tt.message)
			}
		})
	}
}

func TestItemValidator_AccumulatesInFieldOrder(t *testing.T) {
	t.Parallel()

	v := NewItemValidator(nil)
	_, err := v.Validate(ItemInput{
		Description: Text(strings.Repeat("x", 600)),
		Price:       Text("999"),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}

	got := strings.Join(fieldsOf(err), ",")
	if got != "name,category,price,description" {
		t.Errorf("unexpected error order: %s", got)
	}
}

func TestItemValidator_LengthCountsCharacters(t *testing.T) {
	t.Parallel()

	v := NewItemValidator(nil)
	in := validInput()
	// 100 multibyte characters, and escaping would push the stored length past 100
	in.Name = Text(strings.Repeat("é", 95) + "<<<<>")

	item, err := v.Validate(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(item.Name, "&lt;&lt;&lt;&lt;&gt;") {
		t.Errorf("unexpected name: %q", item.Name)
	}
}

func TestItemValidator_BoundaryPrices(t *testing.T) {
	t.Parallel()

	v := NewItemValidator(nil)
	for _, p := range []string{"0", "200", "0.01", "199.99", "1e2", "+5", ".5", "5.", "2E1"} {
		in := validInput()
		in.Price = Text(p)
		if _, err := v.Validate(in); err != nil {
			t.Errorf("price %s rejected: %v", p, err)
		}
	}
}

func TestItemValidator_Categories(t *testing.T) {
	t.Parallel()

	v := NewItemValidator([]string{"drinks", " Drinks ", "", "dips"})
	got := v.Categories()
	if strings.Join(got, ",") != "drinks,dips" {
		t.Errorf("unexpected categories: %v", got)
	}
	got[0] = "mutated"
	if v.Categories()[0] != "drinks" {
		t.Error("Categories() should return a copy")
	}
}

func TestFlexString_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var in ItemInput
	body := `{"name":"Shake","category":"drinks","price":4.50,"description":null}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if in.Name != Text("Shake") {
		t.Errorf("unexpected name: %+v", in.Name)
	}
	if in.Price != Text("4.50") {
		t.Errorf("numbers should keep their literal text: %+v", in.Price)
	}
	if in.Description.Set {
		t.Error("null should leave the field unset")
	}

	var flags struct {
		A FlexString `json:"a"`
		B FlexString `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":true,"b":[1]}`), &flags); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if flags.A != Text("true") {
		t.Errorf("booleans should become text: %+v", flags.A)
	}
	if !flags.B.Invalid {
		t.Error("arrays should be marked invalid")
	}
}

func TestItemValidator_FormInvalidUTF8(t *testing.T) {
	t.Parallel()

	form, err := url.ParseQuery("name=Bad%FFName&category=fries&price=3")
	if err != nil {
		t.Fatal(err)
	}
	_, verr := NewItemValidator(nil).Validate(ItemInputFromForm(form))
	if verr == nil {
		t.Fatal("expected invalid UTF-8 name to be rejected")
	}
	if got := strings.Join(fieldsOf(verr), ","); got != "name" {
		t.Errorf("error fields = %s, want name", got)
	}
}

func TestItemInputFromForm(t *testing.T) {
	t.Parallel()

	form := url.Values{"name": {"Fries"}, "category": {"fries"}, "price": {"3"}}
	in := ItemInputFromForm(form)

	if in.Name != Text("Fries") || in.Price != Text("3") {
		t.Errorf("unexpected input: %+v", in)
	}
	if in.Description.Set {
		t.Error("absent form key should be unset")
	}

	if _, err := NewItemValidator(nil).Validate(in); err != nil {
		t.Errorf("form input should validate: %v", err)
	}
}
