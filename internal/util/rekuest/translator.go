package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/gofiber/fiber/v2"

	"canvasflow.dev/backend/internal/util/i18n"
)

// TranslatorFromCtx extracts the translator injected by the i18n middleware,
// falling back to the default translator when absent (e.g. in tests).
func TranslatorFromCtx(ctx *fiber.Ctx) ut.Translator {
	if ctx != nil {
		if tr, ok := ctx.Locals("T").(ut.Translator); ok {
			return tr
		}
	}
	return i18n.UT.GetFallback()
}
