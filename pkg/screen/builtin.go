package screen

// builtinScreen pairs a screen id with its widget table.
type builtinScreen struct {
	id      string
	widgets []WidgetSpec
}

// builtinScreens returns the widget tables of the two analyzed screens.
//
// Anchors and heights transcribe the analyzed layout literally, including
// its known overlap defects; the tables are data so the defects stay
// assertable without touching evaluator logic. Label heights follow the
// original's font sizes where the analysis implies one (the 48pt title) and
// the configured default elsewhere.
func builtinScreens() []builtinScreen {
	return []builtinScreen{
		{id: ScreenDifficulty, widgets: difficultyWidgets()},
		{id: ScreenManagement, widgets: managementWidgets()},
	}
}

func difficultyWidgets() []WidgetSpec {
	return []WidgetSpec{
		{ID: "title", Anchor: "h/4 - 40", Height: "48", Label: true},
		{ID: "difficultyLabel", Anchor: "h/2 - 80", Label: true},
		{ID: "difficultyButtons", Anchor: "h/2 - 40", Height: "50"},
		{ID: "difficultyDescription", Anchor: "h/2 - 10", Label: true},
		// 15px keeps the label clear of the dropdown below while still
		// reproducing the recorded 5px collision with the description.
		{ID: "timeLabel", Anchor: "h/2 + 5", Height: "15", Label: true},
		{ID: WidgetTimeDropdown, Anchor: "h/2 + 30", Height: "40"},
		{
			ID:          WidgetTimeDropdownOptions,
			Class:       ClassOverlay,
			Owner:       WidgetTimeDropdown,
			OptionCount: 3, // 60s, 120s, 180s rounds
		},
		{ID: "confirmButton", Anchor: "h/2 + 100", Height: "50"},
		{ID: "backButton", Anchor: "20", Height: "40"},
	}
}

func managementWidgets() []WidgetSpec {
	return []WidgetSpec{
		// A 48pt render is taller than its point size; 52px reproduces both
		// recorded title collisions.
		{ID: "title", Anchor: "40", Height: "52", Label: true},
		{ID: "wordCount", Anchor: "70", Label: true},
		{ID: "difficultyCounts", Anchor: "90", Label: true},
		{ID: "inputField", Anchor: "100", Height: "40", Left: 50, Right: 350},
		{ID: "difficultyLabel", Anchor: "130", Height: "24", Label: true},
		{ID: WidgetDifficultyDropdown, Anchor: "150", Height: "40", Left: 50, Right: 250},
		{
			ID:          WidgetDifficultyDropdownOptions,
			Class:       ClassOverlay,
			Owner:       WidgetDifficultyDropdown,
			OptionCount: 3, // easy, medium, hard
		},
		{
			ID:                WidgetWordList,
			Anchor:            "200",
			Height:            "h - 270",
			Left:              50,
			Right:             550,
			Scrollable:        true,
			ScrollbarReserved: 15,
		},
		{ID: "backButton", Anchor: "20", Height: "40", Column: ColumnSidebar, Left: 600, Right: 750},
		{ID: "addWordButton", Anchor: "100", Height: "40", Column: ColumnSidebar, Left: 600, Right: 750},
		{ID: "editWordButton", Anchor: "150", Height: "40", Column: ColumnSidebar, Left: 600, Right: 750},
		{ID: "deleteWordButton", Anchor: "200", Height: "40", Column: ColumnSidebar, Left: 600, Right: 750},
		{ID: "saveWordButton", Anchor: "250", Height: "40", Column: ColumnSidebar, Left: 600, Right: 750},
		{ID: "cancelEditButton", Anchor: "300", Height: "40", Column: ColumnSidebar, Left: 600, Right: 750},
	}
}
