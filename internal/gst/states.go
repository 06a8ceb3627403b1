// Package gst implements the Indian GST jurisdiction and tax-policy rules:
// state codes, GSTIN validation, the standard rate slabs and the
// intrastate/interstate policy decision.
package gst

import (
	"fmt"
	"strings"
)

// StateCode is the two-digit GST state code ("01".."37") that prefixes a GSTIN.
type StateCode string

// stateNames maps GST state codes to state/UT names as published by GSTN.
var stateNames = map[StateCode]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"25": "Daman and Diu",
	"26": "Dadra and Nagar Haveli",
	"27": "Maharashtra",
	"28": "Andhra Pradesh",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
}

// ParseStateCode normalizes and validates a two-digit GST state code.
// Codes are trimmed before comparison; anything outside the published
// state table is rejected.
func ParseStateCode(raw string) (StateCode, error) {
	code := StateCode(strings.TrimSpace(raw))
	if _, ok := stateNames[code]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidStateCode, raw)
	}
	return code, nil
}

// StateName resolves a state code to its name.
func StateName(code StateCode) (string, bool) {
	name, ok := stateNames[code]
	return name, ok
}
