package routes

import (
	_ "embed"
	"time"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Isaiahshap/pulse/internal/config"
)

//go:embed openapi.yaml
var openAPISpec []byte

const docsCSP = "default-src 'none'; style-src 'unsafe-inline'; base-uri 'none'; form-action 'none'; frame-ancestors 'none'"

func registerDocsRoutes(app fiber.Router, cfg *config.Config) error {
	if !cfg.DocsEnabled() {
		return nil
	}

	loadedAt := time.Now().UTC().Format(time.RFC3339)
	indexHandler := func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, fiber.MIMETextHTMLCharsetUTF8)
		c.Set("Content-Security-Policy", docsCSP)
		return docsIndex("Pulse Gym API Docs", loadedAt).Render(c)
	}

	app.Get("/docs", indexHandler)
	app.Get("/docs/", indexHandler)
	app.Get("/docs/openapi.yaml", func(c *fiber.Ctx) error {
		applyDocsBaseHeaders(c, "application/yaml; charset=utf-8")
		c.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none'")
		c.Set(fiber.HeaderContentDisposition, `inline; filename="openapi.yaml"`)
		return c.Status(fiber.StatusOK).Send(openAPISpec)
	})

	return nil
}

func docsIndex(title, loadedAt string) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				g.El("title", g.Text(title)),
				h.StyleEl(g.Raw(`body{margin:0;font-family:Georgia,serif;background:#f6f7f4;color:#132019}
main{max-width:1120px;margin:0 auto;padding:48px 20px}
pre{background:#0f172a;color:#e2e8f0;padding:20px;border-radius:12px;overflow:auto}`)),
			),
			h.Body(
				h.Main(
					h.H1(g.Text(title)),
					h.P(g.Textf("Loaded %s. ", loadedAt), h.A(h.Href("/docs/openapi.yaml"), g.Text("Download openapi.yaml"))),
					h.Pre(h.Code(g.Text(string(openAPISpec)))),
				),
			),
		),
	)
}

func applyDocsBaseHeaders(c *fiber.Ctx, contentType string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "no-store, max-age=0")
	c.Set(fiber.HeaderPragma, "no-cache")
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderXFrameOptions, "DENY")
	c.Set("Referrer-Policy", "no-referrer")
	c.Set("X-Robots-Tag", "noindex, nofollow")
}
