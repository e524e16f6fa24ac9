package components

//go:generate go tool templgen --path . --base ../../..
