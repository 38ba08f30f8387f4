package material

import "strings"

// DefaultIcon is used when a category matches no known material type.
const DefaultIcon = "File"

// Type is one entry of the static catalog of known material types.
type Type struct {
	Name        string
	Description string
	Icon        string
}

// Slug returns the category slug of the type, e.g. "order-of-service".
func (t Type) Slug() string {
	return Slugify(t.Name)
}

var Types = []Type{
	{Name: "Service Banner", Description: "Main promotional image", Icon: "ImageIcon"},
	{Name: "Order of Service", Description: "Service flow document", Icon: "FileText"},
	{Name: "Song list", Description: "Worship set for service", Icon: "Music"},
	{Name: "Opening Prayer", Description: "Prayer script for service opening", Icon: "BookOpen"},
	{Name: "Promo videos", Description: "Video content for service", Icon: "Video"},
	{Name: "Confessions", Description: "Confession scripts", Icon: "Speech"},
	{Name: "Offering scripture", Description: "Bible verses for offering", Icon: "Heart"},
	{Name: "Exhortation", Description: "Encouragement messages", Icon: "MessageSquare"},
	{Name: "Vibey music", Description: "Background music tracks", Icon: "Music"},
	{Name: "Announcements", Description: "Church-wide announcements", Icon: "Megaphone"},
	{Name: "Pictures", Description: "Service photography", Icon: "Image"},
}

var iconsBySlug = func() map[string]string {
	m := make(map[string]string, len(Types))
	for _, t := range Types {
		m[t.Slug()] = t.Icon
	}
	return m
}()

// Slugify lower-cases s and joins its words with dashes.
func Slugify(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// IconFor resolves the display icon of a category.
func IconFor(category string) string {
	if icon, ok := iconsBySlug[Slugify(category)]; ok {
		return icon
	}
	return DefaultIcon
}
