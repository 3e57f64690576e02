package types

import "fmt"

const DeathBanner = "press 'R' to reset"

func ScoreLine(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
