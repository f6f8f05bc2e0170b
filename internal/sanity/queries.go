package sanity

// The GROQ query catalogue. Every page resolves its data through one of
// these; adding a page means adding its query here.
const (
	QueryAllProjects = `*[_type == "project"] | order(projectDate desc) {
  _id, title, slug, coverImage, category, clientName, projectDate, role, projectLink, description,
  challenge, solution, impact, tags
}`

	QueryFeaturedProjects = `*[_type == "project"] | order(projectDate desc)[0...4] {
  _id, title, slug, coverImage, category, projectLink
}`

	QueryProjectBySlug = `*[_type == "project" && slug.current == $slug][0] {
  _id, title, slug, coverImage, gallery, category, clientName, projectDate, role, description, projectLink,
  challenge, solution, impact, tags
}`

	QueryAllExperience = `*[_type == "experience"] | order(order asc) {
  _id, company, role, location, period, description, website, highlights, order
}`

	QueryAllServicePackages = `*[_type == "servicePackage"] | order(category) {
  _id, title, category, price, features, isPopular, description
}`

	QueryProfile = `*[_type == "profile"][0] {
  _id, name, title, bio, portraitImage, interests, skills, hobbies, education, socialLinks,
  "cvFile": cvFile.asset->url
}`

	QueryContactSettings = `*[_type == "contactSettings"][0] {
  _id, email, phone, location, availabilityStatus
}`
)
