package notify

import (
	"strings"
	"text/template"

	"github.com/gleasonw/lidnd/internal/entities"
)

// encounterTemplate renders an encounter view as the chat message the
// mirror posts. The arrow marks the active participant; downed
// participants are struck through.
var encounterTemplate = template.Must(template.New("encounter").Parse(
	`# {{.Name}}
{{- if .Description}}
{{.Description}}
{{- end}}
{{if .Started}}**In progress**{{else}}*Not started*{{end}}
{{range .Participants}}
{{- if .IsActive}}➤ {{else}}   {{end}}{{if le .HP 0}}~~{{.CreatureName}}~~{{else}}**{{.CreatureName}}**{{end}} — {{.HP}}/{{.MaxHP}} HP — initiative {{.Initiative}}
{{end}}`))

// Render produces the chat markdown for one encounter view.
func Render(view *entities.EncounterView) (string, error) {
	var sb strings.Builder
	if err := encounterTemplate.Execute(&sb, view); err != nil {
		return "", err
	}
	return sb.String(), nil
}
