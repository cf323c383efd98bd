// Menuboard - Restaurant Menu Administration
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/menuboard

package validation

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/tomtom215/menuboard/internal/models"
)

// DefaultCategories is the category set used when none is configured.
var DefaultCategories = []string{
	"starters",
	"smush burgers",
	"burgers",
	"sandwiches",
	"fries",
	"dessert",
	"drinks",
	"add-ons",
	"dips",
}

// Field length limits, in characters.
const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// FlexString is a request field that accepts any JSON scalar and keeps its
// textual form. null leaves it unset; objects and arrays mark it invalid.
type FlexString struct {
	Value   string
	Set     bool
	Invalid bool
}

// Text returns a set FlexString holding s.
func Text(s string) FlexString {
	return FlexString{Value: s, Set: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*f = FlexString{}
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case 'n':
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = Text(s)
	case '{', '[':
		f.Set = true
		f.Invalid = true
	default:
		// numbers and booleans keep their literal text
		*f = Text(string(data))
	}
	return nil
}

// ItemInput is the raw create/update payload.
type ItemInput struct {
	Name        FlexString `json:"name"`
	Category    FlexString `json:"category"`
	Price       FlexString `json:"price"`
	Description FlexString `json:"description"`
}

// ItemInputFromForm reads an item from urlencoded form values.
func ItemInputFromForm(form url.Values) ItemInput {
	get := func(key string) FlexString {
		if vals, ok := form[key]; ok && len(vals) > 0 {
			return Text(vals[0])
		}
		return FlexString{}
	}
	return ItemInput{
		Name:        get("name"),
		Category:    get("category"),
		Price:       get("price"),
		Description: get("description"),
	}
}

// itemFields is the trimmed textual form that the validator checks.
type itemFields struct {
	Name        string `json:"name" validate:"required,validtext,max=100"`
	Category    string `json:"category" validate:"required,validtext,menucategory"`
	Price       string `json:"price" validate:"required,validtext,finitefloat,pricerange"`
	Description string `json:"description" validate:"validtext,max=500"`
}

// itemFieldOrder is the order in which item errors are reported.
var itemFieldOrder = []string{"name", "category", "price", "description"}

// ItemValidator validates and normalizes menu item payloads against a fixed
// category set.
type ItemValidator struct {
	v          *validator.Validate
	categories []string
	lookup     map[string]string
	extra      map[string]string
}

// NewItemValidator creates an ItemValidator. Category matching ignores case
// and surrounding whitespace; items are stored with the configured spelling.
// An empty list selects DefaultCategories.
func NewItemValidator(categories []string) *ItemValidator {
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	iv := &ItemValidator{
		v:      newValidator(),
		lookup: make(map[string]string, len(categories)),
	}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, dup := iv.lookup[key]; dup {
			continue
		}
		iv.lookup[key] = c
		iv.categories = append(iv.categories, c)
	}

	iv.extra = map[string]string{"menucategory": strings.Join(iv.categories, ", ")}

	_ = iv.v.RegisterValidation("menucategory", func(fl validator.FieldLevel) bool {
		_, ok := iv.lookup[strings.ToLower(fl.Field().String())]
		return ok
	})

	return iv
}

// Categories returns the accepted categories in configured order.
func (iv *ItemValidator) Categories() []string {
	out := make([]string, len(iv.categories))
	copy(out, iv.categories)
	return out
}

// Validate checks every field of in and returns the normalized item (ID 0).
// All failures are returned together, ordered name, category, price, description.
func (iv *ItemValidator) Validate(in ItemInput) (models.MenuItem, *RequestValidationError) {
	fields := itemFields{
		Name:        strings.TrimSpace(in.Name.Value),
		Category:    strings.TrimSpace(in.Category.Value),
		Price:       strings.TrimSpace(in.Price.Value),
		Description: strings.TrimSpace(in.Description.Value),
	}

	byField := make(map[string]ValidationError, len(itemFieldOrder))
	if verr := convert(iv.v.Struct(&fields), iv.extra); verr != nil {
		for _, e := range verr.errors {
			if _, seen := byField[e.field]; !seen {
				byField[e.field] = e
			}
		}
	}

	invalid := map[string]bool{
		"name":        in.Name.Invalid,
		"category":    in.Category.Invalid,
		"price":       in.Price.Invalid,
		"description": in.Description.Invalid,
	}

	var errs []ValidationError
	for _, name := range itemFieldOrder {
		if invalid[name] {
			errs = append(errs, ValidationError{
				field:   name,
				tag:     "scalar",
				message: displayName(name) + " must be a text or number value",
			})
			continue
		}
		if e, ok := byField[name]; ok {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return models.MenuItem{}, &RequestValidationError{errors: errs}
	}

	price, _ := parseFiniteFloat(fields.Price)

	return models.MenuItem{
		Name:        Escape(fields.Name),
		Category:    iv.lookup[strings.ToLower(fields.Category)],
		Price:       price,
		Description: Escape(fields.Description),
	}, nil
}
