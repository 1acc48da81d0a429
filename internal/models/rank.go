package models

// RankTitle is a named tier a profile qualifies for once its lifetime
// earned points reach the threshold.
type RankTitle struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
}

// Ranks is the fixed ordered rank table, lowest threshold first. The
// threshold-0 entry guarantees ResolveRank always has a result.
var Ranks = []RankTitle{
	{Name: "Apprentice", Threshold: 0, Color: "bg-slate-400", Icon: "🌱"},
	{Name: "Eager Learner", Threshold: 500, Color: "bg-blue-400", Icon: "📖"},
	{Name: "Knowledge Explorer", Threshold: 2000, Color: "bg-green-500", Icon: "🔍"},
	{Name: "Skilled Craftsman", Threshold: 5000, Color: "bg-purple-500", Icon: "🛠️"},
	{Name: "Domain Navigator", Threshold: 10000, Color: "bg-orange-500", Icon: "🚀"},
	{Name: "Legendary Grandmaster", Threshold: 25000, Color: "bg-yellow-500", Icon: "👑"},
}

// ResolveRank returns the highest-threshold rank whose threshold is at
// most totalEarned. A negative input resolves to the lowest rank.
func ResolveRank(totalEarned int) RankTitle {
	rank := Ranks[0]
	for _, r := range Ranks {
		if totalEarned >= r.Threshold {
			rank = r
		}
	}
	return rank
}
