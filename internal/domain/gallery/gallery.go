// Package gallery holds the fixed set of items shown on the media gallery.
// It is independent of the service-material catalog.
package gallery

type Item struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

var items = []Item{
	{
		ID:          "1",
		Category:    "receiving-the-word",
		Title:       "Receiving the Word",
		Description: "Powerful sermons and teaching sessions from our leadership.",
		ImageURL:    "https://i.imgur.com/6uBEh9m.jpeg",
	},
	{
		ID:          "2",
		Category:    "impartation",
		Title:       "Impartation Service",
		Description: "Special prayer and anointing services with impactful testimonies.",
		ImageURL:    "https://i.imgur.com/0NrkyxA.jpeg",
	},
	{
		ID:          "3",
		Category:    "panel-discussion",
		Title:       "Panel Discussions",
		Description: "Thought-provoking conversations on faith and community engagement.",
		ImageURL:    "https://i.postimg.cc/Vkg6XC4t/Panel-discussions.jpg",
	},
	{
		ID:          "4",
		Category:    "prayer",
		Title:       "Prayer Services",
		Description: "Collection of prayer services and special moments of intercession.",
		ImageURL:    "https://i.postimg.cc/TYXYS94m/Prayers.jpg",
	},
	{
		ID:          "5",
		Category:    "special-conferences",
		Title:       "Special Conferences",
		Description: "Events and conferences with guest speakers and specialized teachings.",
		ImageURL:    "https://i.postimg.cc/5tjxvkXc/Special-conferences.png",
	},
	{
		ID:          "6",
		Category:    "worship",
		Title:       "Praise & Worship",
		Description: "Powerful moments of collective worship and musical expression.",
		ImageURL:    "https://i.postimg.cc/YC0cyLMY/0Z4A9906.png",
	},
}

// Items returns a copy of the gallery, in display order, unfiltered.
func Items() []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
