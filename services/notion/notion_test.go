package notion

import (
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
)

func titleProp(text string) *notionapi.TitleProperty {
	return &notionapi.TitleProperty{Title: []notionapi.RichText{{PlainText: text}}}
}

func TestNewServiceRequiresCredentials(t *testing.T) {
	_, err := NewService("", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = NewService("secret", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = NewService("", "db")
	assert.ErrorIs(t, err, ErrNotConfigured)

	svc, err := NewService("secret", "db")
	assert.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestTagNameFieldPriority(t *testing.T) {
	page := notionapi.Page{Properties: notionapi.Properties{
		"Name": titleProp("english name"),
		"物件名":  titleProp("渋谷プロジェクト"),
	}}
	assert.Equal(t, "渋谷プロジェクト", TagName(page))
}

func TestTagNameFallsBackToAnyTitleProperty(t *testing.T) {
	page := notionapi.Page{Properties: notionapi.Properties{
		"Status":  &notionapi.SelectProperty{},
		"案件タイトル": titleProp("福岡ビル改修"),
	}}
	assert.Equal(t, "福岡ビル改修", TagName(page))
}

func TestTagNameTrimsWhitespace(t *testing.T) {
	page := notionapi.Page{Properties: notionapi.Properties{
		"title": titleProp("  padded  "),
	}}
	assert.Equal(t, "padded", TagName(page))
}

func TestTagNameUsesTextContentWhenPlainTextMissing(t *testing.T) {
	page := notionapi.Page{Properties: notionapi.Properties{
		"title": &notionapi.TitleProperty{Title: []notionapi.RichText{
			{Text: &notionapi.Text{Content: "raw content"}},
		}},
	}}
	assert.Equal(t, "raw content", TagName(page))
}

func TestTagNameEmpty(t *testing.T) {
	tests := []struct {
		name string
		page notionapi.Page
	}{
		{"no properties", notionapi.Page{Properties: notionapi.Properties{}}},
		{"no title property", notionapi.Page{Properties: notionapi.Properties{
			"Status": &notionapi.SelectProperty{},
		}}},
		{"empty title", notionapi.Page{Properties: notionapi.Properties{
			"title": &notionapi.TitleProperty{},
		}}},
		{"whitespace only", notionapi.Page{Properties: notionapi.Properties{
			"title": titleProp("   "),
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, TagName(tt.page))
		})
	}
}
