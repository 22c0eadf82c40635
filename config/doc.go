// Package config loads fuzzy controller definitions from YAML, validates
// them and builds ready-to-use control.Controller values.
//
// A definition names the aggregation method, the t-norm family, the
// sampling accuracy, the input and output variables and the rule table:
//
//	method: mamdani
//	norm: {family: hamacher, param: 0.5}
//	inputs:
//	  - {name: temp, kind: triangle, begin: 0, end: 40, terms: [cold, warm, hot]}
//	outputs:
//	  - {name: fan, kind: standard, begin: 0, end: 1, count: 3}
//	rules:
//	  - {if: {temp: hot}, then: {fan: III}}
//
// Variable kinds map onto the classifier constructors: triangle, gaussian
// (uniform layouts over the named terms), standard (roman-labelled scale of
// count terms), partition (terms "0", "1", … peaking at peaks) and terms
// (explicit shapes, including generalized trapezoidal numbers).
//
// Parse rejects unknown keys. Validate checks struct tags with
// go-playground/validator plus kind-specific requirements; semantic
// problems (unknown rule terms, overlapping domains) surface from Build.
package config
