package tailoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/jobpilot/internal/types"
)

// outreachMaxLen is the hard character cap for the short outreach message.
const outreachMaxLen = 300

func renderResume(job *types.Job, verifiedSkills []types.VerifiedSkill, bullets []string) string {
	var sb strings.Builder

	sb.WriteString("RESUME\n======\n\n")
	sb.WriteString(fmt.Sprintf("Tailored for: %s at %s\n\n", job.Title, job.Company))

	sb.WriteString("SUMMARY\n=======\n")
	sb.WriteString("Software developer with experience in modern web technologies and database systems.\n")
	sb.WriteString("Strong background in full-stack development with focus on scalable applications.\n\n")

	if len(verifiedSkills) > 0 {
		names := make([]string, len(verifiedSkills))
		for i, skill := range verifiedSkills {
			names[i] = skill.Name
		}
		sb.WriteString("TECHNICAL SKILLS\n================\n")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n\nNote: Skills listed are professionally verified and match job requirements.\n\n")
	}

	sb.WriteString("EXPERIENCE\n==========\nSoftware Developer\n")
	for _, bullet := range bullets {
		sb.WriteString("- " + bullet + "\n")
	}
	sb.WriteString("\nNote: All experience claims are verified from achievement bank.\n\n")

	sb.WriteString("EDUCATION\n=========\nBachelor's Degree in Computer Science or related field\n")

	return sb.String()
}

// renderResumeATS produces the plain-text variant for applicant tracking
// systems: same sections, no ruling lines or decorations.
func renderResumeATS(job *types.Job, verifiedSkills []types.VerifiedSkill, bullets []string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Resume tailored for %s at %s\n\n", job.Title, job.Company))

	sb.WriteString("SUMMARY\n")
	sb.WriteString("Software developer with experience in modern web technologies and database systems.\n\n")

	if len(verifiedSkills) > 0 {
		names := make([]string, len(verifiedSkills))
		for i, skill := range verifiedSkills {
			names[i] = skill.Name
		}
		sb.WriteString("TECHNICAL SKILLS\n")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n\n")
	}

	sb.WriteString("EXPERIENCE\nSoftware Developer\n")
	for _, bullet := range bullets {
		sb.WriteString(bullet + "\n")
	}
	sb.WriteString("\nEDUCATION\nBachelor's Degree in Computer Science or related field\n")

	return sb.String()
}

func renderCoverEmail(job *types.Job, verifiedSkills []types.VerifiedSkill) string {
	skillsMention := ""
	if len(verifiedSkills) > 0 {
		top := verifiedSkills
		if len(top) > 3 {
			top = top[:3]
		}
		names := make([]string, len(top))
		for i, skill := range top {
			names[i] = skill.Name
		}
		skillsMention = fmt.Sprintf(" My experience with %s aligns well with your requirements.", strings.Join(names, ", "))
	}

	return fmt.Sprintf(`Subject: Application for %s at %s

Dear Hiring Manager,

I am writing to express my interest in the %s position at %s.%s

I am particularly drawn to this opportunity because:
- The role aligns with my technical background and career goals
- %s has a strong reputation in the industry
- The position offers opportunities for professional growth

I would welcome the opportunity to discuss how my background and enthusiasm can contribute to your team. Please find my resume attached for your review.

Thank you for your consideration.

Best regards,
[Your Name]
[Your Phone]
[Your Email]`,
		job.Title, job.Company, job.Title, job.Company, skillsMention, job.Company)
}

// renderOutreach produces the short outreach message, falling back to a
// compact template when the standard one exceeds the length cap.
func renderOutreach(job *types.Job) string {
	message := fmt.Sprintf(`Hi [Name],

I came across the %s opening at %s and am very interested. My background in software development aligns well with the role.

Would you be open to a brief conversation about the position?

Best regards,
[Your Name]`, job.Title, job.Company)

	if len(message) <= outreachMaxLen {
		return message
	}

	message = fmt.Sprintf(`Hi [Name],

I'm interested in the %s position at %s. My technical background aligns well with the role.

Would you be open to discussing the opportunity?

Best,
[Your Name]`, job.Title, job.Company)

	// Absurdly long titles can push even the compact template over the
	// cap. Cut on a rune boundary so multibyte names stay valid UTF-8.
	if len(message) > outreachMaxLen {
		cut := outreachMaxLen
		for cut > 0 && !utf8.RuneStart(message[cut]) {
			cut--
		}
		message = message[:cut]
	}

	return message
}
