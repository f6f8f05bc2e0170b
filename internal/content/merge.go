package content

import "github.com/fikanova/portfolio/internal/domain"

// Singleton merges are deliberately field-by-field: the content owner edits
// these records incrementally, so a partially filled live record keeps its
// filled fields and takes defaults for the rest. Collections never merge at
// the item level; see resolveCollection.

func mergeProfile(live, fallback domain.Profile) domain.Profile {
	out := live
	if out.ID == "" {
		out.ID = fallback.ID
	}
	if out.Name == "" {
		out.Name = fallback.Name
	}
	if out.Title == "" {
		out.Title = fallback.Title
	}
	if out.Bio == "" {
		out.Bio = fallback.Bio
	}
	if out.PortraitImage.IsZero() {
		out.PortraitImage = fallback.PortraitImage
	}
	if len(out.Interests) == 0 {
		out.Interests = fallback.Interests
	}
	if len(out.Skills) == 0 {
		out.Skills = fallback.Skills
	}
	if len(out.Hobbies) == 0 {
		out.Hobbies = fallback.Hobbies
	}
	if len(out.Education) == 0 {
		out.Education = fallback.Education
	}
	if out.CVFile == "" {
		out.CVFile = fallback.CVFile
	}
	if len(out.SocialLinks) == 0 {
		out.SocialLinks = fallback.SocialLinks
	}
	return out
}

func mergeContactSettings(live, fallback domain.ContactSettings) domain.ContactSettings {
	out := live
	if out.ID == "" {
		out.ID = fallback.ID
	}
	if out.Email == "" {
		out.Email = fallback.Email
	}
	if out.Phone == "" {
		out.Phone = fallback.Phone
	}
	if out.Location == "" {
		out.Location = fallback.Location
	}
	if out.AvailabilityStatus == "" {
		out.AvailabilityStatus = fallback.AvailabilityStatus
	}
	return out
}
