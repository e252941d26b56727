package prize

import "fmt"

// Badge is the display marker rendered next to a prize.
type Badge struct {
	Icon     string
	Color    string
	Label    string
	ShowRank bool
}

var categoryBadges = map[Category]Badge{
	CategoryChampion:           {Icon: "trophy", Color: "gold", Label: "1st Place"},
	CategoryTopScorer:          {Icon: "football", Color: "emerald", Label: "Top Scorer"},
	CategoryGoldenBoot:         {Icon: "boot", Color: "gold", Label: "Golden Boot"},
	CategoryBestPlayer:         {Icon: "star", Color: "violet", Label: "Best Player"},
	CategoryPlayerOfTournament: {Icon: "medal", Color: "violet", Label: "Player of the Tournament"},
	CategoryTopAssistProvider:  {Icon: "handshake", Color: "emerald", Label: "Top Assist Provider"},
	CategoryBestGoalkeeper:     {Icon: "gloves", Color: "sky", Label: "Best Goalkeeper"},
	CategoryBestDefender:       {Icon: "shield", Color: "sky", Label: "Best Defender"},
	CategoryFairPlayAward:      {Icon: "scale", Color: "teal", Label: "Fair Play Award"},
	CategoryYoungPlayerAward:   {Icon: "sprout", Color: "lime", Label: "Young Player Award"},
}

var rankBadges = map[int]Badge{
	1: {Icon: "trophy", Color: "gold", Label: "1st Place", ShowRank: true},
	2: {Icon: "trophy", Color: "silver", Label: "2nd Place", ShowRank: true},
	3: {Icon: "trophy", Color: "bronze", Label: "3rd Place", ShowRank: true},
}

// BadgeFor resolves the display badge for a category and rank. Category
// badges win over rank badges: CHAMPION always renders the 1st-place badge
// regardless of its numeric rank, and single-winner categories suppress the
// rank number entirely. Ranks without a category map to gold/silver/bronze
// for 1/2/3 and a generic trophy otherwise.
func BadgeFor(category Category, rank int) Badge {
	if badge, ok := categoryBadges[category]; ok {
		return badge
	}
	if badge, ok := rankBadges[rank]; ok {
		return badge
	}

	return Badge{
		Icon:     "trophy",
		Color:    "slate",
		Label:    fmt.Sprintf("%dth Place", rank),
		ShowRank: true,
	}
}
