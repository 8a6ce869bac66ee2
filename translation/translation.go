package translation

import (
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
)

var (
	uni   *ut.UniversalTranslator
	Trans ut.Translator

	once sync.Once
)

// InitTranslation sets up the English translator used for validation
// messages. Safe to call more than once.
func InitTranslation() {
	once.Do(func() {
		english := en.New()
		uni = ut.New(english, english)
		Trans, _ = uni.GetTranslator("en")
	})
}

// Translator returns the shared translator, initializing it on first use.
func Translator() ut.Translator {
	InitTranslation()
	return Trans
}
