package resumepdf

// Author is the résumé owner, also written to the PDF metadata.
const Author = "Joseph Cannon"

// documentTitle is written to the PDF metadata.
const documentTitle = "Joseph Cannon Resume"

const (
	credentialsLine = "MMCS (E-8), USN (Ret.) | PMP | LEED AP | MBA"
	contactLine     = "Yorkville, IL | jrc1883@gmail.com | linkedin.com/in/josephcannon | unjoe.me"
)

// pick returns concise for VariantConcise and detailed otherwise.
func pick(v Variant, concise, detailed string) string {
	if v == VariantConcise {
		return concise
	}
	return detailed
}

// CanonicalResume returns the compiled-in résumé for a variant.
// Each call returns a fresh value.
func CanonicalResume(v Variant) (*Resume, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	r := &Resume{
		Name:        "JOSEPH CANNON",
		Credentials: credentialsLine,
		Contact:     contactLine,
		Summary: "Senior operations leader with 21+ years of U.S. Navy service and 9 years of Fortune 500 facilities management experience. " +
			"Proven track record managing $140M+ portfolios, leading 350+ personnel, and driving operational excellence through data-driven decision making. " +
			"Expert in building cross-functional teams, implementing enterprise systems, and delivering measurable cost savings. " +
			"TS/SCI clearance eligible (reinvestigation window through Feb 2026).",
		Jobs: []JobRecord{
			{
				Title:        "MEGA Regional Facilities Services Manager",
				Organization: "Mars Inc.",
				Location:     "Yorkville, IL",
				Dates:        "2016 - Present",
				Bullets: []string{
					pick(v,
						"Lead integrated facilities management across 47 sites in North America with $50-60M direct budget",
						"Lead integrated facilities management across 47 sites in North America with $50-60M direct budget responsibility"),
					"Spearheaded IFM 2.0 transition for 47 sites with zero disruptions during July 2024 go-live",
					"Built Power BI dashboards driving 14% efficiency improvement (SAE: 74.6% to 84.8%)",
					"Delivered $815K in Value Leadership Savings through MRO supply strategy optimization",
					"Increased CMMS asset completion from <40% to >85% and site stabilization from 50% to 80%",
					"Manage 8,700+ assets with comprehensive PM schedules and compliance tracking",
					pick(v,
						"Reduced meetings by 30% and task completion time by 20% through AI tool implementation",
						"Reduced meetings by 30% and task completion time by 20% through AI tool implementation (Microsoft Co-Pilot)"),
					"Led Allied Security provider transition across 27 U.S. sites in partnership with ISS",
				},
			},
			{
				Title:        "Senior Chief Petty Officer (MMCS, E-8) - Senior Enlisted Leader",
				Organization: "U.S. Navy",
				Location:     "Various Locations",
				Dates:        "2003 - 2024 (21 years)",
				Bullets: []string{
					pick(v,
						"Department LCPO at Navy Recruit Training Command: Led 6 CPOs, 27 POs, 26 supervisors across $1B complex",
						"Department LCPO at Navy Recruit Training Command: Led 6 CPOs, 27 POs, and 26 maintenance supervisors across $1B, 240-acre complex with 42 facilities"),
					"Managed $2M facilities budget with 2,461 job requests; identified and corrected 3,000 deficiencies",
					"Lead RDC: Transformed 176 civilians into Sailors per cycle; achieved 18 meritorious advancements",
					"Command Training Officer: Planned $959K training budget for 118 Sailors (3,338 man-days)",
					"Increased mission readiness 30-40% through qualification tracking systems adopted across 329+ Sailors",
					pick(v,
						"UNREP Operations: Transferred 2.2M+ gallons fuel across 14 multi-national ships",
						"UNREP Operations: Transferred 2.2M+ gallons fuel across 14 multi-national ships with 100% safety compliance"),
					"Warfare Qualified: Surface Warfare (SW) and Air Warfare (AW) designations",
				},
			},
			{
				Title:        "Systems Engineer - Building Commissioning",
				Organization: "Enovity, Inc.",
				Location:     "San Francisco, CA",
				Dates:        "2008 - 2013",
				Bullets: []string{
					"Led energy efficiency assessments for 200+ commercial and government facilities",
					"Authored 75+ technical analysis reports on HVAC, lighting, and building automation systems",
					"Secured $300K+ in energy rebates for clients through utility incentive programs",
					pick(v,
						"Key clients: NARA, UCSF Medical Center, GSA Federal Buildings, Intel, Genentech",
						"Key clients: NARA (National Archives), UCSF Medical Center, GSA Federal Buildings, Intel, Genentech"),
				},
			},
		},
		Projects: []Project{
			{
				Title: "PopKit - Claude Code Plugin Ecosystem",
				Bullets: []string{
					"Open-source plugin with 30+ specialized AI agents for development workflows",
					"Features automated assessments, multi-agent coordination, and project management tools",
					"GitHub: github.com/jrc1883/popkit",
				},
			},
		},
		Education: []EducationRow{
			{Credential: "MBA, International Business", Institution: "Liberty University", Year: "2018"},
			{Credential: "BA, Business Management", Institution: "Golden Gate University", Year: "2013"},
			{Credential: "Senior Enlisted Academy", Institution: "U.S. Navy (Capstone Award)", Year: "2011"},
			{Credential: "SEJPME", Institution: "National Defense University", Year: "Current"},
		},
		Certifications: []string{
			pick(v, "PMP", "PMP (Project Management Professional)"),
			"LEED AP",
			"Agile@Mars",
			"Navy Instructor (NEC 9502)",
			"RDC (NEC 9508)",
		},
		Competencies: []CompetencyLine{
			{Label: "Leadership", Items: []string{"Cross-functional team leadership", "Change management", "Talent development", "Strategic planning"}},
			{Label: "Operations", Items: []string{"Facilities management", "Asset management", "Supply chain", "Process optimization"}},
			{Label: "Technical", Items: []string{"Power BI", "SAP", "SharePoint", "Microsoft 365", "AI/Automation", "Data analytics"}},
			{Label: "Domains", Items: []string{"Defense/Government", "Manufacturing", "Energy efficiency", "HVAC systems"}},
		},
	}

	if v == VariantDetailed {
		r.Contact = r.Credentials + "\n" + r.Contact
		r.Credentials = ""
	}

	return r, nil
}
