package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zeebo/xxh3"
)

func OptIn(ctx *fiber.Ctx, t time.Time) {
	offset := time.Hour
	OptInCustom(ctx, t, offset)
}

func OptInCustom(ctx *fiber.Ctx, t time.Time, offset time.Duration) {
	ctx.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(offset.Seconds())))
	ctx.Set("Expires", t.Add(offset).Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

// OptInHashed sets a strong ETag computed from the response payload so that
// recomputed-but-identical payloads still validate as fresh. The caller may
// compare the returned tag against If-None-Match to short-circuit with a 304.
func OptInHashed(ctx *fiber.Ctx, payload []byte) string {
	etag := `"` + strconv.FormatUint(xxh3.Hash(payload), 16) + `"`
	ctx.Set(fiber.HeaderETag, etag)
	return etag
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	ctx.Set("Pragma", "no-cache")
	ctx.Set("Expires", "0")
}
