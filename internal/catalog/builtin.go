package catalog

// DefaultBrand is shown on branded slides when a deck names none.
const DefaultBrand = "Titan Global.sa"

// Builtin returns the deck shipped with the binary. Media paths are relative
// to the working directory.
func Builtin() *Deck {
	return &Deck{
		Title: "Strategic Entry into Saudi Air Defense",
		Brand: DefaultBrand,
		Slides: []Slide{
			{
				ID:        1,
				Title:     "Strategic Entry into Saudi Air Defense",
				Highlight: "High-level access, strategic alignment, and execution inside the Kingdom of Saudi Arabia.",
				MediaType: MediaVideo,
				MediaSrc:  "media/cover-ksa-defense.mp4",
				AccentSrc: "media/obj-saudi-emblem.png",
				Layout:    LayoutBranded,
			},
			{
				ID:    2,
				Title: "KSA: The Critical Air Defense Frontier",
				Bullets: []string{
					"Vision 2030 is reshaping defense, localization, and industrial partnerships.",
					"Air defense is a top national priority with multi-billion dollar programs.",
					"The Kingdom prefers partners who align with its long-term strategic agenda, not just vendors.",
				},
				Highlight: "Leidos needs more than an introduction. It needs a strategic operator inside the Kingdom.",
				MediaType: MediaImage,
				MediaSrc:  "media/ksa-future-city.png",
				AccentSrc: "media/obj-radar-core.png",
				Layout:    LayoutDimmed,
			},
			{
				ID:       3,
				Title:    "Titan Global.sa: Strategic Operator on the Ground",
				Subtitle: "Advisor · Facilitator · Strategic Connector",
				Bullets: []string{
					"Position Leidos as a premier partner for Kingdom-wide air defense initiatives.",
					"Secure direct access to decision-makers controlling budget and strategy.",
					"Ensure regulatory and localization alignment with Vision 2030.",
					"Drive execution from first meeting to signed agreements.",
				},
				MediaType: MediaVideo,
				MediaSrc:  "media/titan-hologram.mp4",
				AccentSrc: "media/obj-saudi-emblem.png",
			},
			{
				ID:    4,
				Title: "Direct Access to the Big Three",
				Bullets: []string{
					"Ministry of Defense (MoD): Operational requirements & near-term defense priorities.",
					"GAMI: Localization and regulatory mandates; domestic spending and licensing.",
					"SAMI: Joint ventures, industrial partnerships, long-term production and sustainment.",
				},
				Highlight: "Separate, tailored engagements for each pillar, not generic networking.",
				MediaType: MediaVideo,
				MediaSrc:  "media/commercial-structure.mp4",
				AccentSrc: "media/obj-roadmap-ring.png",
			},
			{
				ID:    5,
				Title: "Three-Phase Engagement Model",
				Bullets: []string{
					"Phase 1 – High-Level Access: Secure exclusive meetings with MoD, GAMI, and SAMI leadership.",
					"Phase 2 – Strategic Alignment: Tailor Leidos' value proposition to each entity's Vision 2030 mandate.",
					"Phase 3 – Execution & Follow-Through: Manage post-meeting momentum and communication to drive agreements.",
				},
				MediaType: MediaVideo,
				MediaSrc:  "media/execution-roadmap.mp4",
			},
			{
				ID:    6,
				Title: "Aligned Incentives, Minimal Upfront Risk",
				Bullets: []string{
					"Strategic Advisory & Facilitation: $250,000 USD, 6-month fixed term, executive access and on-ground support.",
					"Performance Success Fee: 3% of total contract value, triggered at binding agreements with MoD, GAMI, or SAMI.",
					"Compensation directly tied to Leidos' financial success in the Kingdom.",
				},
				Highlight: "The window to establish Leidos as a core air defense partner in KSA is open. " +
					"Titan Global.sa is ready to operate on the ground immediately.",
				MediaType: MediaVideo,
				MediaSrc:  "media/global-defense-network.mp4",
			},
		},
	}
}
