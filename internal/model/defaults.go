package model

const (
	defaultListEmoji  = "📋"
	defaultBoardEmoji = "🗂️"
)

// SeedLists fills in the stock lists a fresh profile starts with and
// backfills a missing emoji on anything loaded from disk.
func SeedLists(lists map[string]Collection) {
	ensure := func(key, name, emoji string) {
		if _, ok := lists[key]; !ok {
			lists[key] = Collection{Key: key, Name: name, Emoji: emoji, Mode: ModeList}
		}
	}
	ensure("inbox", "Inbox", "📥")
	ensure("work", "Work", "💼")
	ensure("personal", "Personal", "🏠")
	ensure("welcome", "Welcome", "👋")
	ensure("shilpha", "Shilpha", "💜")

	for key, c := range lists {
		c.Key = key
		c.Mode = ModeList
		if c.Emoji == "" {
			c.Emoji = defaultListEmoji
		}
		lists[key] = c
	}
}

// SeedBoards mirrors SeedLists for the board namespace.
func SeedBoards(boards map[string]Collection) {
	if _, ok := boards["main"]; !ok {
		boards["main"] = Collection{Key: "main", Name: "Main Board", Emoji: defaultBoardEmoji, Mode: ModeBoard}
	}
	for key, c := range boards {
		c.Key = key
		c.Mode = ModeBoard
		if c.Emoji == "" {
			c.Emoji = defaultBoardEmoji
		}
		boards[key] = c
	}
}
