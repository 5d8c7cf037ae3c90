// Package batch derives creative variants from a product brief and renders
// them across placements.
package batch

import (
	"strings"

	"github.com/user/sparkstudio/pkg/templates"
)

// Fallback copy for briefs with fewer than three bullets.
const (
	fallbackBullet1 = "Ship announcements faster"
	fallbackBullet2 = "Reach the right people"
	fallbackBullet3 = "Make updates impossible to miss"
)

// Brief is the marketing input for a batch.
type Brief struct {
	Product string
	Angle   string
	Bullets []string
}

// CreativeSpec is one variant: a template and its variable set.
type CreativeSpec struct {
	Template string
	Vars     templates.Vars
}

// BuildCreativeSpecs returns the six variants in fixed order: hero-launch,
// social-proof, feature-highlight, testimonial, before-after, urgency-cta.
// Empty bullets are ignored. Only the first three bullets fill numbered
// slots, but joined lines use every bullet.
func BuildCreativeSpecs(brief Brief) []CreativeSpec {
	var bullets []string
	for _, b := range brief.Bullets {
		if b != "" {
			bullets = append(bullets, b)
		}
	}

	b1 := pick(bullets, 0, fallbackBullet1)
	b2 := pick(bullets, 1, fallbackBullet2)
	b3 := pick(bullets, 2, fallbackBullet3)

	product := brief.Product
	angle := brief.Angle

	joined := func(fallback string) string {
		if len(bullets) > 0 {
			return strings.Join(bullets, " • ")
		}
		return fallback
	}

	featureDesc := b2 + "."
	if len(bullets) > 1 {
		featureDesc = b2 + ". " + b3 + "."
	}

	return []CreativeSpec{
		{
			Template: "hero-launch",
			Vars: templates.Vars{
				"BADGE_TEXT":   "Now Live",
				"HEADLINE":     or(angle, "Make every update impossible to miss"),
				"SUBLINE":      joined(b1 + " • " + b2 + " • " + b3),
				"CTA_TEXT":     "Try it now →",
				"PRODUCT_NAME": product,
			},
		},
		{
			Template: "social-proof",
			Vars: templates.Vars{
				"TAGLINE":       "Built for creators & communities",
				"STAT_1_NUMBER": "90%+",
				"STAT_1_LABEL":  "Open rate",
				"STAT_2_NUMBER": "< 60s",
				"STAT_2_LABEL":  "Setup",
				"STAT_3_NUMBER": "3+",
				"STAT_3_LABEL":  "Channels",
				"HEADLINE":      or(angle, "Get seen, not scrolled past"),
				"CTA_TEXT":      "See results →",
				"PRODUCT_NAME":  product,
			},
		},
		{
			Template: "feature-highlight",
			Vars: templates.Vars{
				"FEATURE_ICON":  "⚡",
				"FEATURE_LABEL": "Core Feature",
				"FEATURE_NAME":  b1,
				"FEATURE_DESC":  featureDesc,
				"CTA_TEXT":      "See how →",
				"PRODUCT_NAME":  product,
			},
		},
		{
			Template: "testimonial",
			Vars: templates.Vars{
				"QUOTE_TEXT":     "“I finally have a reliable way to reach every member — without hoping they see a post.”",
				"AUTHOR_INITIAL": "A",
				"AUTHOR_NAME":    "A creator like you",
				"AUTHOR_ROLE":    "Community owner",
				"PRODUCT_NAME":   product,
			},
		},
		{
			Template: "before-after",
			Vars: templates.Vars{
				"HEADLINE":       or(angle, "Stop losing attention"),
				"SUBLINE":        "The difference between posting and getting read:",
				"BEFORE_LABEL":   "Before",
				"BEFORE_POINT_1": "Updates get buried",
				"BEFORE_POINT_2": "Low open rates",
				"BEFORE_POINT_3": "Members miss key info",
				"AFTER_LABEL":    "After",
				"AFTER_POINT_1":  pick(bullets, 0, "Push notifications that land"),
				"AFTER_POINT_2":  pick(bullets, 1, "Segmented delivery"),
				"AFTER_POINT_3":  pick(bullets, 2, "Scheduled + consistent"),
				"CTA_TEXT":       "Upgrade your comms →",
				"PRODUCT_NAME":   product,
			},
		},
		{
			Template: "urgency-cta",
			Vars: templates.Vars{
				"URGENCY_BADGE": "Limited Time",
				"HEADLINE":      "Launch pricing ends soon",
				"OFFER_TEXT":    "Early access bonuses",
				"DETAIL_TEXT":   joined(b1 + " • " + b2),
				"HOURS":         "23",
				"MINUTES":       "47",
				"SECONDS":       "12",
				"CTA_TEXT":      "Claim it →",
				"FINE_PRINT":    "While spots last",
				"PRODUCT_NAME":  product,
			},
		},
	}
}

func pick(items []string, idx int, fallback string) string {
	if idx < len(items) {
		return items[idx]
	}
	return fallback
}

func or(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
