// Package translate holds the translation providers. Each provider makes a
// single request per call; Guard applies the checks shared by all of them.
package translate
