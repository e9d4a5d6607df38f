// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// LetterSummary describes one generated letter as reported by the server
// after processing. The client never changes it: the values are used to
// render the results list and to derive per-letter download file names.
type LetterSummary struct {
	// ContractorName is the contractor name with the leading tax number
	// already removed by the server.
	ContractorName string `json:"contractor_name"`

	// ContractorShortName is the quoted part of the legal name
	// (e.g. Ромашка for ООО "Ромашка"). Used in file names.
	ContractorShortName string `json:"contractor_short_name"`

	// OrderNumber identifies the order. Spreadsheets may yield it as a
	// number, so both JSON strings and numbers are accepted.
	OrderNumber FlexString `json:"order_number"`

	// TotalAmount is the sum of overdue positions.
	TotalAmount decimal.Decimal `json:"total_amount"`

	// TotalPenalty is the accumulated penalty for the overdue positions.
	TotalPenalty decimal.Decimal `json:"total_penalty"`

	// TotalPositions is the number of overdue positions in the order.
	TotalPositions int `json:"total_positions"`

	// Optional fields. Older servers omit them.
	BEName      string `json:"be_name,omitempty"`
	RegNumber   string `json:"reg_number,omitempty"`
	RegDate     string `json:"reg_date,omitempty"`
	PlannedDate string `json:"planned_date,omitempty"`
	Category    string `json:"category,omitempty"`
}

// LetterFileName returns the letter document name for the summary shown at
// zero-based position index: letter_{index+1}_{short}_{order}.docx.
func (l LetterSummary) LetterFileName(index int) string {
	return fmt.Sprintf("letter_%d_%s_%s.docx", index+1, l.ContractorShortName, l.OrderNumber)
}

// AppendixFileName returns the appendix document name for the summary shown
// at zero-based position index: appendix_{index+1}_{short}_{order}.docx.
func (l LetterSummary) AppendixFileName(index int) string {
	return fmt.Sprintf("appendix_%d_%s_%s.docx", index+1, l.ContractorShortName, l.OrderNumber)
}

// FlexString is a string that also accepts JSON numbers.
type FlexString string

// String implements fmt.Stringer.
func (f FlexString) String() string {
	return string(f)
}

// UnmarshalJSON accepts a JSON string, a JSON number (kept in its textual
// form) or null.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("order number must be a string or a number: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}
