package overlap_test

import (
	"fmt"

	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/overlap"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

func ExampleAnalyzer_Analyze() {
	registry := screen.Default()
	scr, err := registry.Get(screen.ScreenDifficulty)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	placed, err := layout.Build(scr, geometry.Surface{Width: 800, Height: 600})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	records := overlap.New().Analyze(placed)
	for _, r := range overlap.Defects(records) {
		fmt.Println(r)
	}
	// Output:
	// difficultyButtons overlaps difficultyDescription by 20px
	// difficultyButtons overlaps timeLabel by 5px
	// difficultyDescription overlaps timeLabel by 5px
}
