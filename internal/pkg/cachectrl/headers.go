// Package cachectrl sets response cache headers. The dock board and roster
// views opt out so polling dashboards never read through a stale proxy;
// slow-moving reference lists opt in with a short max-age.
package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultMaxAge = time.Hour

// OptIn marks the response publicly cacheable for the default hour.
func OptIn(ctx *fiber.Ctx, t time.Time) {
	OptInCustom(ctx, t, defaultMaxAge)
}

// OptInCustom marks the response publicly cacheable for maxAge, with t as
// its last-modified time.
func OptInCustom(ctx *fiber.Ctx, t time.Time, maxAge time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
	ctx.Set(fiber.HeaderExpires, t.Add(maxAge).Format(time.RFC1123))

	ctx.Response().Header.SetLastModified(t)
}

// OptOut forbids caching of the response anywhere along the way.
func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}
