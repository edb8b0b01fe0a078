package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/srshearer/slack-announce/pkg/domain"
	"github.com/srshearer/slack-announce/pkg/domain/model"
)

const (
	serverUpTitle   = "Announcement: Server is up"
	serverUpText    = "The server is back up!"
	serverDownTitle = "Announcement: Server going down"
)

// template builds an attachment for messages matching its rule. Canned
// templates ignore the explicit title and color.
type template struct {
	name     string
	match    func(message string) bool
	build    func(ctx context.Context, c *Composer, in composeInput) (*model.Attachment, error)
	freeform bool
}

type composeInput struct {
	message string
	title   string
	color   string
}

// templates are evaluated in order and the first match wins.
var templates = []template{
	{
		name:  "server_up",
		match: func(m string) bool { return strings.HasPrefix(m, "up") },
		build: buildServerUp,
	},
	{
		name:  "server_down",
		match: func(m string) bool { return strings.HasPrefix(m, "down ") },
		build: buildServerDown,
	},
	{
		name:  "software_update",
		match: func(m string) bool { return strings.HasPrefix(m, "serverupdate") },
		build: buildSoftwareUpdate,
	},
	{
		name:     "freeform",
		match:    func(string) bool { return true },
		build:    buildFreeform,
		freeform: true,
	},
}

// Composer turns a raw message into a Slack attachment
type Composer struct {
	defaultTitle string
}

func NewComposer(defaultTitle string) *Composer {
	return &Composer{defaultTitle: defaultTitle}
}

// Compose classifies message and builds its attachment. fallback overrides
// the notification fallback text, which otherwise is the title or, without a
// title, the message itself.
func (c *Composer) Compose(ctx context.Context, message, title, color, fallback string) (*model.Attachment, error) {
	logger := ctxlog.From(ctx)

	if message == "" {
		return nil, goerr.Wrap(domain.ErrInvalidInput, "message is required")
	}

	in := composeInput{message: message, title: title, color: color}
	for _, tmpl := range templates {
		if !tmpl.match(message) {
			continue
		}

		if !tmpl.freeform && (title != "" || color != "") {
			logger.Warn("title and color are ignored for canned templates",
				slog.String("template", tmpl.name),
			)
		}

		attachment, err := tmpl.build(ctx, c, in)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build attachment", goerr.V("template", tmpl.name))
		}

		switch {
		case fallback != "":
			attachment.Fallback = fallback
		case attachment.Title != "":
			attachment.Fallback = attachment.Title
		default:
			attachment.Fallback = message
		}

		logger.Debug("message composed",
			slog.String("template", tmpl.name),
			slog.String("title", attachment.Title),
			slog.String("color", attachment.Color.String()),
		)
		return attachment, nil
	}

	// unreachable: freeform matches everything
	return nil, goerr.Wrap(domain.ErrInvalidInput, "no template matched")
}

// ResolveColor maps alias to a color token. An empty alias yields the default
// color silently; an unknown alias yields the default color with a warning.
func ResolveColor(ctx context.Context, alias string) model.ColorToken {
	if alias == "" {
		return model.DefaultColor
	}

	if token, ok := model.LookupColor(alias); ok {
		return token
	}

	ctxlog.From(ctx).Warn("invalid color, using default",
		slog.String("color", alias),
		slog.Any("available", model.ColorAliases()),
		slog.String("default", model.DefaultColor.String()),
	)
	return model.DefaultColor
}

func buildServerUp(_ context.Context, _ *Composer, _ composeInput) (*model.Attachment, error) {
	return &model.Attachment{
		Title: serverUpTitle,
		Text:  serverUpText,
		Color: model.ColorGood,
	}, nil
}

func buildServerDown(_ context.Context, _ *Composer, in composeInput) (*model.Attachment, error) {
	_, downtime, _ := strings.Cut(in.message, " ")
	text := "The server is going down for maintenance.\n" +
		"Expected downtime is about " + downtime + "."

	return &model.Attachment{
		Title: serverDownTitle,
		Text:  text,
		Color: model.ColorWarning,
	}, nil
}

func buildSoftwareUpdate(_ context.Context, _ *Composer, in composeInput) (*model.Attachment, error) {
	tokens := strings.Split(in.message, " ")
	if len(tokens) < 2 || tokens[1] == "" {
		return nil, goerr.Wrap(domain.ErrInvalidInput, "serverupdate requires a software name",
			goerr.V("message", in.message))
	}

	software := tokens[1]
	text := strings.ReplaceAll(strings.Join(tokens[2:], " "), `\n`, "\n")
	if text == "" {
		text = "A new version of " + software + " is available."
	}

	return &model.Attachment{
		Title: software + " Update Available",
		Text:  text,
		Color: model.ColorBlue,
	}, nil
}

func buildFreeform(ctx context.Context, c *Composer, in composeInput) (*model.Attachment, error) {
	title := in.title
	if title == "" {
		title = c.defaultTitle
	}

	return &model.Attachment{
		Title: title,
		Text:  in.message,
		Color: ResolveColor(ctx, in.color),
	}, nil
}
