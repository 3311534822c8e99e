package catalog

// ArtifactID identifies one of the seven collectible artifacts.
type ArtifactID string

const (
	ArtifactRunebomme          ArtifactID = "runebomme"
	ArtifactReindeerAmulet     ArtifactID = "reindeer_amulet"
	ArtifactDuodjiPattern      ArtifactID = "duodji_pattern"
	ArtifactEnvironmentalStone ArtifactID = "environmental_stone"
	ArtifactYoikCrystal        ArtifactID = "yoik_crystal"
	ArtifactHistoryScroll      ArtifactID = "history_scroll"
	ArtifactWisdomToken        ArtifactID = "wisdom_token"
)

// AllArtifacts lists every artifact in chapter order.
var AllArtifacts = []ArtifactID{
	ArtifactRunebomme,
	ArtifactReindeerAmulet,
	ArtifactDuodjiPattern,
	ArtifactEnvironmentalStone,
	ArtifactYoikCrystal,
	ArtifactHistoryScroll,
	ArtifactWisdomToken,
}

// KnownArtifact reports whether id belongs to the closed artifact set.
func KnownArtifact(id ArtifactID) bool {
	_, ok := challengeByArtifact[id]
	return ok
}
