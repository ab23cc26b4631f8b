package render

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2/v6"
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/logger"
)

// TemplateRenderer renders server-side pages with pongo2.
type TemplateRenderer struct {
	templateSet *pongo2.TemplateSet
	logger      logger.Interface
}

func NewTemplateRenderer(templateDir string, logger logger.Interface) (*TemplateRenderer, error) {
	if templateDir == "" {
		return nil, fmt.Errorf("template directory is required")
	}

	if _, err := os.Stat(templateDir); err != nil {
		return nil, fmt.Errorf("template directory not found: %w", err)
	}

	abs, err := filepath.Abs(templateDir)
	if err != nil {
		return nil, fmt.Errorf("resolve template directory: %w", err)
	}

	templateSet := pongo2.NewSet("helpdesk", pongo2.MustNewLocalFileSystemLoader(abs))

	return &TemplateRenderer{
		templateSet: templateSet,
		logger:      logger,
	}, nil
}

// HTML renders the named template with the given data.
func (r *TemplateRenderer) HTML(c *gin.Context, code int, name string, data interface{}) {
	var ctx pongo2.Context
	switch v := data.(type) {
	case pongo2.Context:
		ctx = v
	case gin.H:
		ctx = pongo2.Context(v)
	case nil:
		ctx = pongo2.Context{}
	default:
		ctx = pongo2.Context{"data": data}
	}

	tmpl, err := r.templateSet.FromFile(name)
	if err != nil {
		r.logger.Errorw("Failed to load template", "name", name, "error", err)
		c.String(http.StatusInternalServerError, "template not found: %s", name)
		return
	}

	out, err := tmpl.ExecuteBytes(ctx)
	if err != nil {
		r.logger.Errorw("Failed to render template", "name", name, "error", err)
		c.String(http.StatusInternalServerError, "template execution error")
		return
	}
	c.Data(code, "text/html; charset=utf-8", out)
}
