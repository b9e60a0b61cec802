package infos

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	errMalformedTemplate = errors.New("tooltip template has mismatched or nested braces")
	errTemplateTimeout   = errors.New("tooltip template expansion exceeded its time budget")
)

// isTemplateError reports whether err comes from the template scanner
// itself, in which case the caller can fall back to the raw template.
// Upstream resolve errors are not template errors and must propagate.
func isTemplateError(err error) bool {
	return errors.Is(err, errMalformedTemplate) || errors.Is(err, errTemplateTimeout)
}

// expandBudget bounds how long placeholder extraction may take, guarding
// against pathologically long templates
const expandBudget = 5 * time.Millisecond

// expandTemplate replaces every {fieldType} placeholder in template with
// that field's resolved value. Placeholders resolve with an empty
// subType and may not nest or span lines.
func expandTemplate(ctx context.Context, resolver *fieldResolver, template string) (expanded string, err error) {

	deadline := time.Now().Add(expandBudget)

	var out strings.Builder
	remainder := template
	for {
		if time.Now().After(deadline) {
			return "", errors.Wrapf(errTemplateTimeout, "gave up expanding after %v", expandBudget)
		}

		open := strings.IndexByte(remainder, '{')
		if open < 0 {
			if strings.IndexByte(remainder, '}') >= 0 {
				return "", errors.Wrapf(errMalformedTemplate, "unmatched '}' in %q", template)
			}
			out.WriteString(remainder)
			break
		}
		if strings.IndexByte(remainder[:open], '}') >= 0 {
			return "", errors.Wrapf(errMalformedTemplate, "unmatched '}' in %q", template)
		}

		out.WriteString(remainder[:open])

		rest := remainder[open+1:]
		closing := strings.IndexByte(rest, '}')
		if closing < 0 {
			return "", errors.Wrapf(errMalformedTemplate, "unmatched '{' in %q", template)
		}

		expression := rest[:closing]
		if strings.ContainsAny(expression, "{\n") {
			return "", errors.Wrapf(errMalformedTemplate, "invalid placeholder %q", expression)
		}

		_, value, resolveErr := resolver.resolve(ctx, expression, "")
		if resolveErr != nil {
			return "", resolveErr
		}
		out.WriteString(value)

		remainder = rest[closing+1:]
	}

	return out.String(), nil
}
