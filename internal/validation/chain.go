// Package validation checks JSON request bodies field by field and reports
// every failing field in one response.
package validation

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/pageza/devconnector/backend/internal/types"
)

const locationBody = "body"

var validate = validator.New()

// FieldError describes one failed field
type FieldError struct {
	Value    interface{} `json:"value,omitempty"`
	Msg      string      `json:"msg"`
	Param    string      `json:"param,omitempty"`
	Location string      `json:"location,omitempty"`
}

type rule func(value interface{}, present bool) bool

// Chain is an ordered list of rules for one body field sharing one message.
// Evaluation stops at the first failing rule. Every checked field binds to a
// string, so a present value of any other JSON type fails the chain.
type Chain struct {
	field    string
	msg      string
	optional bool
	rules    []rule
}

// Check starts a chain for field reporting msg on failure
func Check(field, msg string) *Chain {
	return &Chain{field: field, msg: msg}
}

// Optional skips the chain when the field is absent, null or empty
func (c *Chain) Optional() *Chain {
	c.optional = true
	return c
}

// Exists fails when the field is missing from the body
func (c *Chain) Exists() *Chain {
	c.rules = append(c.rules, func(_ interface{}, present bool) bool {
		return present
	})
	return c
}

// NotEmpty fails when the field is missing or its string form is empty
func (c *Chain) NotEmpty() *Chain {
	c.rules = append(c.rules, func(v interface{}, _ bool) bool {
		return toString(v) != ""
	})
	return c
}

// IsEmail fails unless the field is a valid email address
func (c *Chain) IsEmail() *Chain {
	c.rules = append(c.rules, func(v interface{}, _ bool) bool {
		return validate.Var(toString(v), "required,email") == nil
	})
	return c
}

// IsLength fails when the field has fewer than min characters
func (c *Chain) IsLength(min int) *Chain {
	c.rules = append(c.rules, func(v interface{}, _ bool) bool {
		return utf8.RuneCountInString(toString(v)) >= min
	})
	return c
}

// IsDate fails unless the field parses as a date
func (c *Chain) IsDate() *Chain {
	c.rules = append(c.rules, func(v interface{}, _ bool) bool {
		_, err := types.ParseDate(toString(v))
		return err == nil
	})
	return c
}

func (c *Chain) run(body map[string]interface{}) *FieldError {
	value, present := body[c.field]
	if c.optional && (value == nil || value == "") {
		return nil
	}
	_, isString := value.(string)
	wrongType := value != nil && !isString
	for _, r := range c.rules {
		if wrongType || !r(value, present) {
			return &FieldError{
				Value:    value,
				Msg:      c.msg,
				Param:    c.field,
				Location: locationBody,
			}
		}
	}
	return nil
}

// Run evaluates every chain against body and returns the failures in chain order
func Run(body map[string]interface{}, chains ...*Chain) []FieldError {
	var errs []FieldError
	for _, c := range chains {
		if fe := c.run(body); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return errs
}

// toString reads a JSON value as text; anything but a string reads as empty
func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}
