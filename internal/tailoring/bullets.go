package tailoring

import (
	"fmt"

	"github.com/jonathan/jobpilot/internal/types"
)

// maxBullets caps the experience section length.
const maxBullets = 5

// Years-of-experience tiers for skill-derived bullet phrasing.
const (
	tierDeveloped = 3
	tierUtilized  = 1
)

// fallbackBullets are generic, claim-free bullets used when the bank yields
// nothing for this job.
var fallbackBullets = []string{
	"Developed software applications using proven technologies",
	"Collaborated effectively in team-based development environments",
	"Participated in code review and quality assurance processes",
}

// truthfulBullets generates resume bullets backed entirely by the
// achievement bank: verified achievements verbatim first, then
// skill-derived sentences whose phrasing depends on years of experience.
// Only professional-use skills produce bullets.
func truthfulBullets(achievements []types.Achievement, verifiedSkills []types.VerifiedSkill) []string {
	bullets := make([]string, 0, maxBullets)

	for _, achievement := range achievements {
		if len(bullets) >= maxBullets {
			break
		}
		bullet := achievement.Description
		if achievement.Context != "" {
			bullet += " in " + achievement.Context
		}
		bullets = append(bullets, bullet)
	}

	for _, skill := range verifiedSkills {
		if len(bullets) >= maxBullets {
			break
		}
		if !skill.ProfessionalUse {
			continue
		}

		var bullet string
		switch {
		case skill.YearsExperience >= tierDeveloped:
			bullet = fmt.Sprintf("Developed applications using %s with %s proficiency", skill.Name, skill.Proficiency)
		case skill.YearsExperience >= tierUtilized:
			bullet = fmt.Sprintf("Utilized %s for software development projects", skill.Name)
		default:
			bullet = fmt.Sprintf("Applied %s in professional development work", skill.Name)
		}
		bullets = append(bullets, bullet)
	}

	if len(bullets) == 0 {
		bullets = append(bullets, fallbackBullets...)
	}

	if len(bullets) > maxBullets {
		bullets = bullets[:maxBullets]
	}

	return bullets
}
