package models

// Color is a CSS color such as #18d.
type Color string
