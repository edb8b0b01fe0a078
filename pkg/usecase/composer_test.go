package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/srshearer/slack-announce/pkg/domain"
	"github.com/srshearer/slack-announce/pkg/domain/model"
	"github.com/srshearer/slack-announce/pkg/usecase"
)

func TestComposer(t *testing.T) {
	ctx := context.Background()
	composer := usecase.NewComposer("Default Title")

	t.Run("Empty message is rejected", func(t *testing.T) {
		_, err := composer.Compose(ctx, "", "", "", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("Server up ignores trailing text", func(t *testing.T) {
		for _, msg := range []string{"up", "up and running", "upgrade"} {
			attachment, err := composer.Compose(ctx, msg, "", "", "")
			gt.NoError(t, err)
			gt.Equal(t, attachment.Title, "Announcement: Server is up")
			gt.Equal(t, attachment.Text, "The server is back up!")
			gt.Equal(t, attachment.Color, model.ColorGood)
			gt.Equal(t, attachment.Fallback, "Announcement: Server is up")
		}
	})

	t.Run("Server down interpolates downtime", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "down 30 minutes", "", "", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "Announcement: Server going down")
		gt.True(t, strings.Contains(attachment.Text, "about 30 minutes"))
		gt.Equal(t, attachment.Text, "The server is going down for maintenance.\nExpected downtime is about 30 minutes.")
		gt.Equal(t, attachment.Color, model.ColorWarning)
	})

	t.Run("down without trailing space is freeform", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "downtime tonight", "", "", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "Default Title")
		gt.Equal(t, attachment.Text, "downtime tonight")
	})

	t.Run("Software update", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, `serverupdate widget v2 released\ncheck it out`, "", "", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "widget Update Available")
		gt.Equal(t, attachment.Text, "v2 released\ncheck it out")
		gt.Equal(t, attachment.Color, model.ColorBlue)
		gt.Equal(t, attachment.Color.String(), "#439FE0")
	})

	t.Run("Software update without notes", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "serverupdate widget", "", "", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "widget Update Available")
		gt.Equal(t, attachment.Text, "A new version of widget is available.")
	})

	t.Run("Software update without name", func(t *testing.T) {
		_, err := composer.Compose(ctx, "serverupdate", "", "", "")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("Freeform uses default title", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "Deploy finished", "", "", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "Default Title")
		gt.Equal(t, attachment.Text, "Deploy finished")
		gt.Equal(t, attachment.Color, model.ColorGrey)
		gt.Equal(t, attachment.Fallback, "Default Title")
	})

	t.Run("Freeform with explicit title and color", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "Disk almost full", "Storage", "RED", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "Storage")
		gt.Equal(t, attachment.Color, model.ColorDanger)
		gt.Equal(t, attachment.Fallback, "Storage")
	})

	t.Run("Freeform with unknown color falls back to default", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "hello", "", "chartreuse", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Color, model.DefaultColor)
	})

	t.Run("Fallback falls back to message without a title", func(t *testing.T) {
		attachment, err := usecase.NewComposer("").Compose(ctx, "plain message", "", "", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "")
		gt.Equal(t, attachment.Fallback, "plain message")
	})

	t.Run("Explicit fallback wins", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "up", "", "", "server back")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Fallback, "server back")
	})

	t.Run("Canned templates ignore title and color", func(t *testing.T) {
		attachment, err := composer.Compose(ctx, "down 5 minutes", "Custom", "purple", "")
		gt.NoError(t, err)
		gt.Equal(t, attachment.Title, "Announcement: Server going down")
		gt.Equal(t, attachment.Color, model.ColorWarning)
	})
}

func TestResolveColor(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		alias    string
		expected model.ColorToken
	}{
		{alias: "", expected: model.ColorGrey},
		{alias: "info", expected: model.ColorGrey},
		{alias: "Default", expected: model.ColorGrey},
		{alias: "good", expected: model.ColorGood},
		{alias: "GREEN", expected: model.ColorGood},
		{alias: "warn", expected: model.ColorWarning},
		{alias: "Orange", expected: model.ColorWarning},
		{alias: "danger", expected: model.ColorDanger},
		{alias: "red", expected: model.ColorDanger},
		{alias: "purple", expected: model.ColorPurple},
		{alias: "blue", expected: model.ColorBlue},
		{alias: "not-a-color", expected: model.ColorGrey},
		{alias: "#ff0000", expected: model.ColorGrey},
	}

	for _, tc := range testCases {
		t.Run(tc.alias, func(t *testing.T) {
			gt.Equal(t, usecase.ResolveColor(ctx, tc.alias), tc.expected)
		})
	}
}
