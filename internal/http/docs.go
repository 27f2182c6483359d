package http

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openAPISpec []byte

const docsHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Admin Dashboard API</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1"/>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
  SwaggerUIBundle({
    url: "/api/docs/openapi.json",
    dom_id: "#swagger-ui"
  });
</script>
</body>
</html>`

func (h *Handler) docsPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(docsHTML))
}

func (h *Handler) openAPIDocument(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", openAPISpec)
}
