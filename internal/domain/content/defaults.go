// internal/domain/content/defaults.go
package content

import "go.mongodb.org/mongo-driver/bson"

// DefaultSections returns the seed content tree for a page type. The
// result is built fresh on every call so callers may mutate it freely;
// the provider itself holds no state.
//
// Seed content is what the public site renders until an editor saves
// the page for the first time.
func DefaultSections(name string) map[string]bson.M {
	switch name {
	case DentalExams:
		return map[string]bson.M{
			"hero": {
				"title":    "Comprehensive Dental Exams",
				"subtitle": "Thorough checkups that catch problems early",
				"image":    "/images/services/dental-exams-hero.jpg",
				"accent":   "#1d7a8c",
			},
			"overview": {
				"title": "What a Dental Exam Includes",
				"description": "A complete exam covers much more than a quick look. " +
					"We screen for decay, gum disease, and oral cancer, and review " +
					"your bite, existing restorations, and X-rays.",
				"highlights": bson.A{
					"Digital X-rays with low radiation exposure",
					"Oral cancer screening at every visit",
					"Personalized treatment planning",
				},
			},
			"steps": {
				"title": "Your Visit, Step by Step",
				"items": bson.A{
					bson.M{"order": 1, "title": "Health history review", "description": "We update your medical history and discuss any concerns."},
					bson.M{"order": 2, "title": "Imaging", "description": "Digital X-rays as needed, typically once a year."},
					bson.M{"order": 3, "title": "Examination", "description": "The dentist checks teeth, gums, bite, and soft tissue."},
					bson.M{"order": 4, "title": "Findings and plan", "description": "We walk through what we found and what, if anything, to do next."},
				},
			},
			"faq": {
				"title": "Dental Exam Questions",
				"items": bson.A{
					bson.M{"question": "How often should I have an exam?", "answer": "Most patients do well with an exam every six months."},
					bson.M{"question": "Do exams hurt?", "answer": "No. An exam is visual and instrument-based; nothing invasive happens without discussing it first."},
					bson.M{"question": "Are X-rays safe?", "answer": "Digital X-rays use a fraction of the radiation of older film systems."},
				},
			},
			"cta": {
				"title":       "Due for a checkup?",
				"description": "New patients are always welcome.",
				"buttonText":  "Book an Exam",
				"buttonLink":  "/contact",
			},
		}
	case TeethCleaning:
		return map[string]bson.M{
			"hero": {
				"title":    "Professional Teeth Cleaning",
				"subtitle": "Gentle hygiene visits that keep your smile healthy",
				"image":    "/images/services/teeth-cleaning-hero.jpg",
				"accent":   "#2a9d8f",
			},
			"intro": {
				"title": "Why Regular Cleanings Matter",
				"description": "Even with excellent home care, tartar builds up in places " +
					"a toothbrush can't reach. Professional cleanings remove it before " +
					"it leads to gum disease.",
			},
			"benefits": {
				"title": "Benefits of a Hygiene Visit",
				"items": bson.A{
					bson.M{"title": "Healthier gums", "description": "Removing plaque and tartar stops gingivitis before it starts.", "icon": "shield"},
					bson.M{"title": "Fresher breath", "description": "Built-up deposits are a common cause of persistent bad breath.", "icon": "wind"},
					bson.M{"title": "Brighter smile", "description": "Polishing lifts surface stains from coffee, tea, and wine.", "icon": "sparkles"},
				},
			},
			"faq": {
				"title": "Cleaning Questions",
				"items": bson.A{
					bson.M{"question": "Does a cleaning hurt?", "answer": "Most patients feel only mild pressure. Tell your hygienist about any sensitivity and we adjust."},
					bson.M{"question": "How long does it take?", "answer": "A routine cleaning takes about 45 minutes."},
				},
			},
			"cta": {
				"title":       "Schedule your cleaning",
				"description": "Keep your six-month routine on track.",
				"buttonText":  "Book a Cleaning",
				"buttonLink":  "/contact",
			},
		}
	case FluorideTreatments:
		return map[string]bson.M{
			"hero": {
				"title":    "Fluoride Treatments",
				"subtitle": "Extra protection for developing and sensitive teeth",
				"image":    "/images/services/fluoride-hero.jpg",
				"accent":   "#4d96ff",
			},
			"intro": {
				"title": "Strengthening Enamel",
				"description": "A fluoride varnish applied after your cleaning remineralizes " +
					"enamel and makes teeth more resistant to decay. It takes minutes and " +
					"benefits children and adults alike.",
			},
			"benefits": {
				"title": "Who Benefits Most",
				"items": bson.A{
					bson.M{"title": "Children", "description": "Developing teeth absorb fluoride especially well."},
					bson.M{"title": "Patients with sensitivity", "description": "Varnish can calm sensitivity to hot and cold."},
					bson.M{"title": "High decay risk", "description": "Dry mouth, braces, or a history of cavities all raise risk."},
				},
			},
			"cta": {
				"title":      "Ask about fluoride at your next visit",
				"buttonText": "Contact Us",
				"buttonLink": "/contact",
			},
		}
	case DentalSealants:
		return map[string]bson.M{
			"hero": {
				"title":    "Dental Sealants",
				"subtitle": "A thin barrier that keeps cavities out of molars",
				"image":    "/images/services/sealants-hero.jpg",
				"accent":   "#6a4c93",
			},
			"intro": {
				"title": "How Sealants Work",
				"description": "Molars have deep grooves that trap food and resist brushing. " +
					"A sealant flows into those grooves and hardens into a smooth shield.",
			},
			"candidates": {
				"title": "Good Candidates",
				"items": bson.A{
					bson.M{"title": "Kids with new molars", "description": "Sealing molars soon after they erupt gives the best protection."},
					bson.M{"title": "Teens", "description": "Cavity-prone years are the right time for a barrier."},
					bson.M{"title": "Adults with deep grooves", "description": "Unrestored molars with deep pits can still be sealed."},
				},
			},
			"faq": {
				"title": "Sealant Questions",
				"items": bson.A{
					bson.M{"question": "How long do sealants last?", "answer": "Several years; we check them at every exam and touch up as needed."},
					bson.M{"question": "Is the procedure invasive?", "answer": "No drilling and no anesthetic. The tooth is cleaned, conditioned, and painted."},
				},
			},
			"cta": {
				"title":       "Protect those molars",
				"description": "Sealants take one short visit.",
				"buttonText":  "Schedule a Visit",
				"buttonLink":  "/contact",
			},
		}
	case NightGuards:
		return map[string]bson.M{
			"hero": {
				"title":    "Custom Night Guards",
				"subtitle": "Stop grinding damage while you sleep",
				"image":    "/images/services/night-guards-hero.jpg",
				"accent":   "#264653",
			},
			"intro": {
				"title": "Grinding and Clenching",
				"description": "Bruxism wears enamel flat, cracks restorations, and wakes you " +
					"with sore jaw muscles. A custom-fitted guard absorbs those forces.",
			},
			"benefits": {
				"title": "Why Custom Beats Store-Bought",
				"items": bson.A{
					bson.M{"title": "Precise fit", "description": "Made from an impression of your teeth, so it stays put all night."},
					bson.M{"title": "Durable materials", "description": "Lab-grade acrylic lasts years longer than boil-and-bite guards."},
					bson.M{"title": "Comfortable thickness", "description": "Thin where it can be, reinforced where it must be."},
				},
			},
			"care": {
				"title": "Caring for Your Guard",
				"items": bson.A{
					"Rinse with cool water after each use",
					"Brush it gently with a soft toothbrush, no toothpaste",
					"Store dry in its ventilated case",
					"Bring it to your dental visits so we can check the fit",
				},
			},
			"faq": {
				"title": "Night Guard Questions",
				"items": bson.A{
					bson.M{"question": "How long until I get used to it?", "answer": "Most patients adjust within a week of nightly wear."},
					bson.M{"question": "How long does a guard last?", "answer": "Three to five years on average, depending on grinding intensity."},
				},
			},
			"cta": {
				"title":       "Wake up without jaw pain",
				"description": "Impressions take one quick appointment.",
				"buttonText":  "Ask About Night Guards",
				"buttonLink":  "/contact",
			},
		}
	case SportsMouthguards:
		return map[string]bson.M{
			"hero": {
				"title":    "Sports Mouthguards",
				"subtitle": "Custom protection for every season",
				"image":    "/images/services/sports-guards-hero.jpg",
				"accent":   "#e76f51",
			},
			"intro": {
				"title": "Protecting Athletes' Smiles",
				"description": "A knocked-out tooth is a lifelong repair. A custom mouthguard " +
					"cushions impacts far better than a generic one, and athletes actually " +
					"wear guards that fit.",
			},
			"types": {
				"title": "Guard Options",
				"items": bson.A{
					bson.M{"title": "Custom lab-made", "description": "Best fit and protection, molded from your impression."},
					bson.M{"title": "Dual-layer", "description": "Extra cushioning for contact sports like hockey and football."},
					bson.M{"title": "Braces-compatible", "description": "Designed to accommodate orthodontic hardware."},
				},
			},
			"faq": {
				"title": "Mouthguard Questions",
				"items": bson.A{
					bson.M{"question": "What sports need a guard?", "answer": "Any sport with contact or fall risk: football, hockey, basketball, skateboarding, martial arts."},
					bson.M{"question": "Can kids outgrow a guard?", "answer": "Yes. Growing athletes should have the fit checked each season."},
				},
			},
			"cta": {
				"title":      "Get fitted before the season starts",
				"buttonText": "Book a Fitting",
				"buttonLink": "/contact",
			},
		}
	case TMJConsult:
		return map[string]bson.M{
			"hero": {
				"title":    "TMJ Consultations",
				"subtitle": "Relief for jaw pain, clicking, and tension headaches",
				"image":    "/images/services/tmj-hero.jpg",
				"accent":   "#8d5a97",
			},
			"symptoms": {
				"title": "Signs of a TMJ Disorder",
				"items": bson.A{
					"Jaw clicking, popping, or locking",
					"Pain or tenderness around the ear",
					"Morning headaches and facial muscle fatigue",
					"Difficulty opening wide or chewing",
				},
			},
			"treatment": {
				"title": "How We Help",
				"description": "Treatment starts conservative: a thorough bite evaluation, " +
					"followed by options such as an occlusal splint, habit coaching, and " +
					"targeted adjustments. Surgery is a last resort, not a starting point.",
				"options": bson.A{
					bson.M{"title": "Bite evaluation", "description": "We map how your teeth meet and where forces concentrate."},
					bson.M{"title": "Occlusal splint", "description": "A custom appliance that lets the joint rest and heal."},
					bson.M{"title": "Referral network", "description": "For complex cases we coordinate with TMJ specialists and physical therapists."},
				},
			},
			"faq": {
				"title": "TMJ Questions",
				"items": bson.A{
					bson.M{"question": "Will my TMJ problem go away on its own?", "answer": "Mild flare-ups often settle, but recurring pain deserves an evaluation before the joint wears."},
					bson.M{"question": "Is a splint the same as a night guard?", "answer": "They look similar, but a splint is engineered to reposition and unload the joint."},
				},
			},
			"cta": {
				"title":       "Tired of jaw pain?",
				"description": "A consult takes under an hour.",
				"buttonText":  "Book a TMJ Consult",
				"buttonLink":  "/contact",
			},
		}
	case EmergencyCare:
		return map[string]bson.M{
			"hero": {
				"title":    "Emergency Dental Care",
				"subtitle": "Same-day appointments for urgent problems",
				"image":    "/images/services/emergency-hero.jpg",
				"accent":   "#d62828",
				"phone":    "(555) 014-7200",
			},
			"situations": {
				"title": "We See Emergencies For",
				"items": bson.A{
					bson.M{"title": "Knocked-out tooth", "description": "Time matters most. Keep the tooth moist and call immediately."},
					bson.M{"title": "Severe toothache", "description": "Throbbing pain that keeps you up usually means infection."},
					bson.M{"title": "Broken tooth or crown", "description": "Save any pieces and avoid chewing on that side."},
					bson.M{"title": "Swelling or abscess", "description": "Facial swelling can become serious quickly; don't wait it out."},
				},
			},
			"steps": {
				"title": "What To Do Right Now",
				"items": bson.A{
					bson.M{"order": 1, "title": "Call us", "description": "We hold same-day slots for emergencies."},
					bson.M{"order": 2, "title": "Control bleeding", "description": "Gentle pressure with clean gauze for ten minutes."},
					bson.M{"order": 3, "title": "Manage pain", "description": "Over-the-counter pain relief and a cold compress help until you arrive."},
				},
			},
			"cta": {
				"title":      "In pain right now?",
				"buttonText": "Call (555) 014-7200",
				"buttonLink": "tel:+15550147200",
			},
		}
	case NewPatients:
		return map[string]bson.M{
			"hero": {
				"title":    "Welcome, New Patients",
				"subtitle": "Everything you need before your first visit",
				"image":    "/images/new-patients-hero.jpg",
				"accent":   "#2a9d8f",
			},
			"expectations": {
				"title": "Your First Visit",
				"description": "Plan for about an hour: a conversation about your goals and " +
					"history, a comprehensive exam with X-rays, and usually a cleaning in " +
					"the same appointment.",
			},
			"forms": {
				"title":       "Patient Forms",
				"description": "Save time by completing your paperwork at home.",
				"items": bson.A{
					bson.M{"title": "New Patient Registration", "file": "/forms/registration.pdf"},
					bson.M{"title": "Health History", "file": "/forms/health-history.pdf"},
					bson.M{"title": "HIPAA Consent", "file": "/forms/hipaa.pdf"},
				},
			},
			"insurance": {
				"title": "Insurance and Payment",
				"description": "We accept most PPO plans and file claims on your behalf. " +
					"No insurance? Ask about our in-house membership plan.",
				"accepted": bson.A{"Delta Dental", "Cigna", "MetLife", "Aetna", "Guardian"},
			},
			"cta": {
				"title":       "Ready to join us?",
				"description": "Request your first appointment online.",
				"buttonText":  "Request Appointment",
				"buttonLink":  "/contact",
			},
		}
	case About:
		return map[string]bson.M{
			"hero": {
				"title":    "About Our Practice",
				"subtitle": "Neighborhood dentistry since 2004",
				"image":    "/images/about-hero.jpg",
			},
			"team": {
				"title": "Meet the Team",
				"members": bson.A{
					bson.M{"name": "Dr. Elena Marsh", "role": "General Dentist", "bio": "Practicing for 20 years with a focus on restorative care.", "photo": "/images/team/marsh.jpg"},
					bson.M{"name": "Dr. Owen Park", "role": "Associate Dentist", "bio": "Special interest in pediatric and preventive dentistry.", "photo": "/images/team/park.jpg"},
				},
			},
			"values": {
				"title": "How We Practice",
				"items": bson.A{
					bson.M{"title": "Explain first", "description": "No treatment starts before you understand the why and the cost."},
					bson.M{"title": "Conservative care", "description": "We preserve tooth structure whenever we can."},
					bson.M{"title": "Comfort matters", "description": "From scheduling to sedation options, we plan around anxiety."},
				},
			},
			"cta": {
				"title":      "Come say hello",
				"buttonText": "Meet Us In Person",
				"buttonLink": "/contact",
			},
		}
	case Home:
		return map[string]bson.M{
			"hero": {
				"title":      "Modern Dentistry, Neighborly Care",
				"subtitle":   "Exams, cleanings, and emergency care for the whole family",
				"image":      "/images/home-hero.jpg",
				"buttonText": "Book an Appointment",
				"buttonLink": "/contact",
			},
			"services": {
				"title": "What We Do",
				"items": bson.A{
					bson.M{"title": "Dental Exams", "link": "/services/dental-exams", "icon": "clipboard"},
					bson.M{"title": "Teeth Cleaning", "link": "/services/teeth-cleaning", "icon": "brush"},
					bson.M{"title": "Night Guards", "link": "/services/night-guards", "icon": "moon"},
					bson.M{"title": "Emergency Care", "link": "/services/emergency-care", "icon": "alert"},
				},
			},
			"testimonials": {
				"title": "What Patients Say",
				"items": bson.A{
					bson.M{"quote": "First dentist visit I haven't dreaded in years.", "author": "Maria G."},
					bson.M{"quote": "They fit me in the same morning I chipped a tooth.", "author": "Devon R."},
				},
			},
			"cta": {
				"title":       "New patients welcome",
				"description": "Evening and Saturday appointments available.",
				"buttonText":  "Get Started",
				"buttonLink":  "/contact",
			},
		}
	}
	return nil
}
