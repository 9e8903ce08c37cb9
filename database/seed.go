package database

import (
	"fmt"
	"log"

	"github.com/collegemetrics/api/model"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("🌱 Starting database seeding...")

	if err := s.SeedColleges(); err != nil {
		return fmt.Errorf("failed to seed colleges: %w", err)
	}

	log.Println("✅ Database seeding completed successfully!")
	return nil
}

// SeedColleges loads the sample college dataset with its tuition,
// diversity, and salary extensions. A few entries are deliberately
// missing an extension, mirroring the source data where not every
// school appears in every survey.
func (s *Seeder) SeedColleges() error {
	// Check if colleges already exist
	var count int64
	if err := s.db.Model(&model.College{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("⏭️  Colleges already exist, skipping...")
		return nil
	}

	colleges := sampleColleges()

	// Fill the derived minority total from the group counts.
	for i := range colleges {
		if d := colleges[i].Diversity; d != nil {
			d.TotalMinority = d.MinoritySum()
		}
	}

	if err := s.db.Create(&colleges).Error; err != nil {
		return err
	}

	log.Printf("✅ Created %d colleges with extension rows\n", len(colleges))
	return nil
}

func sampleColleges() []model.College {
	return []model.College{
		{
			Name: "University of Alabama", State: "Alabama",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 10780, InStateTotal: 24806,
				OutOfStateTuition: 30250, OutOfStateTotal: 44276,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 38390, Women: 21704,
				AmericanIndian: 120, Asian: 480, Black: 3960, Hispanic: 1700,
				PacificIslander: 40, White: 29000, TwoOrMore: 1100,
				Unknown: 900, NonResident: 1090,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 52300, MidCareerPay: 97500, StemPercent: 20},
		},
		{
			Name: "Auburn University", State: "Alabama",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 11276, InStateTotal: 24136,
				OutOfStateTuition: 30524, OutOfStateTotal: 43384,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 30440, Women: 15234,
				AmericanIndian: 90, Asian: 700, Black: 1600, Hispanic: 1100,
				PacificIslander: 20, White: 25400, TwoOrMore: 800,
				Unknown: 300, NonResident: 430,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 54500, MidCareerPay: 100800, StemPercent: 31},
		},
		{
			Name: "Stanford University", State: "California",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 53529, InStateTotal: 71587,
				OutOfStateTuition: 53529, OutOfStateTotal: 71587,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 17381, Women: 7441,
				AmericanIndian: 180, Asian: 3900, Black: 800, Hispanic: 1900,
				PacificIslander: 50, White: 6100, TwoOrMore: 1400,
				Unknown: 600, NonResident: 2451,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 79000, MidCareerPay: 145000, StemPercent: 53},
		},
		{
			Name: "University of California-Berkeley", State: "California",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 14254, InStateTotal: 36264,
				OutOfStateTuition: 44008, OutOfStateTotal: 66018,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 41910, Women: 22139,
				AmericanIndian: 100, Asian: 14500, Black: 1400, Hispanic: 6300,
				PacificIslander: 80, White: 10200, TwoOrMore: 2300,
				Unknown: 1300, NonResident: 5730,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 70700, MidCareerPay: 136800, StemPercent: 37},
		},
		{
			Name: "California Institute of Technology", State: "California",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 52362, InStateTotal: 68901,
				OutOfStateTuition: 52362, OutOfStateTotal: 68901,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 2233, Women: 836,
				AmericanIndian: 5, Asian: 700, Black: 45, Hispanic: 280,
				PacificIslander: 2, White: 640, TwoOrMore: 130,
				Unknown: 70, NonResident: 361,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 84600, MidCareerPay: 151600, StemPercent: 97},
		},
		{
			Name: "Santa Monica College", State: "California",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeTwoYear,
				InStateTuition: 1162, InStateTotal: 9154,
				OutOfStateTuition: 9174, OutOfStateTotal: 17166,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 27300, Women: 14606,
				AmericanIndian: 80, Asian: 3900, Black: 2400, Hispanic: 11900,
				PacificIslander: 60, White: 6200, TwoOrMore: 1100,
				Unknown: 400, NonResident: 1260,
			},
			// No salary survey entry for this school.
		},
		{
			Name: "Massachusetts Institute of Technology", State: "Massachusetts",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 51832, InStateTotal: 67430,
				OutOfStateTuition: 51832, OutOfStateTotal: 67430,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 11466, Women: 4401,
				AmericanIndian: 30, Asian: 2900, Black: 600, Hispanic: 1500,
				PacificIslander: 10, White: 3800, TwoOrMore: 500,
				Unknown: 400, NonResident: 1726,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 86300, MidCareerPay: 150500, StemPercent: 69},
		},
		{
			Name: "Harvard University", State: "Massachusetts",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 50420, InStateTotal: 67580,
				OutOfStateTuition: 50420, OutOfStateTotal: 67580,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 31120, Women: 15311,
				AmericanIndian: 80, Asian: 4400, Black: 1800, Hispanic: 2700,
				PacificIslander: 30, White: 12800, TwoOrMore: 900,
				Unknown: 2200, NonResident: 6210,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 74800, MidCareerPay: 146800, StemPercent: 24},
		},
		{
			Name: "Williams College", State: "Massachusetts",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 55450, InStateTotal: 69950,
				OutOfStateTuition: 55450, OutOfStateTotal: 69950,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 2150, Women: 1096,
				AmericanIndian: 5, Asian: 270, Black: 160, Hispanic: 280,
				PacificIslander: 2, White: 1100, TwoOrMore: 130,
				Unknown: 40, NonResident: 163,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 62500, MidCareerPay: 127600, StemPercent: 28},
		},
		{
			Name: "University of Texas at Austin", State: "Texas",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 10824, InStateTotal: 27648,
				OutOfStateTuition: 38326, OutOfStateTotal: 55150,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 51832, Women: 27446,
				AmericanIndian: 130, Asian: 10900, Black: 2600, Hispanic: 12300,
				PacificIslander: 60, White: 20500, TwoOrMore: 1600,
				Unknown: 700, NonResident: 3042,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 58200, MidCareerPay: 110900, StemPercent: 35},
		},
		{
			Name: "Rice University", State: "Texas",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 48330, InStateTotal: 62310,
				OutOfStateTuition: 48330, OutOfStateTotal: 62310,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 7124, Women: 3231,
				AmericanIndian: 10, Asian: 1800, Black: 500, Hispanic: 1100,
				PacificIslander: 5, White: 2400, TwoOrMore: 300,
				Unknown: 150, NonResident: 859,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 68100, MidCareerPay: 135700, StemPercent: 49},
		},
		{
			Name: "Columbia University in the City of New York", State: "New York",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 59430, InStateTotal: 76300,
				OutOfStateTuition: 59430, OutOfStateTotal: 76300,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 29372, Women: 14921,
				AmericanIndian: 60, Asian: 4700, Black: 1900, Hispanic: 3300,
				PacificIslander: 30, White: 9500, TwoOrMore: 1000,
				Unknown: 1900, NonResident: 6982,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 69200, MidCareerPay: 130400, StemPercent: 30},
		},
		{
			Name: "Cornell University", State: "New York",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 55188, InStateTotal: 73879,
				OutOfStateTuition: 55188, OutOfStateTotal: 73879,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 23600, Women: 12213,
				AmericanIndian: 50, Asian: 4400, Black: 1400, Hispanic: 2700,
				PacificIslander: 20, White: 9700, TwoOrMore: 1100,
				Unknown: 900, NonResident: 3330,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 66100, MidCareerPay: 125600, StemPercent: 42},
		},
		{
			Name: "University of Illinois at Urbana-Champaign", State: "Illinois",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 15094, InStateTotal: 30906,
				OutOfStateTuition: 31664, OutOfStateTotal: 47476,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 47826, Women: 21938,
				AmericanIndian: 50, Asian: 8600, Black: 2400, Hispanic: 4700,
				PacificIslander: 30, White: 21300, TwoOrMore: 1300,
				Unknown: 800, NonResident: 8646,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 60200, MidCareerPay: 111900, StemPercent: 44},
		},
		{
			Name: "University of Michigan-Ann Arbor", State: "Michigan",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 15262, InStateTotal: 26984,
				OutOfStateTuition: 49350, OutOfStateTotal: 61072,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 46002, Women: 23219,
				AmericanIndian: 70, Asian: 6700, Black: 2100, Hispanic: 2800,
				PacificIslander: 20, White: 25800, TwoOrMore: 1700,
				Unknown: 900, NonResident: 5912,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 63400, MidCareerPay: 114400, StemPercent: 36},
		},
		{
			Name: "Duke University", State: "North Carolina",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 55960, InStateTotal: 73151,
				OutOfStateTuition: 55960, OutOfStateTotal: 73151,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 16606, Women: 8240,
				AmericanIndian: 40, Asian: 2500, Black: 1500, Hispanic: 1300,
				PacificIslander: 10, White: 6600, TwoOrMore: 500,
				Unknown: 1000, NonResident: 3156,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 68700, MidCareerPay: 134900, StemPercent: 32},
		},
		{
			Name: "Arizona State University-Tempe", State: "Arizona",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 10822, InStateTotal: 23374,
				OutOfStateTuition: 27372, OutOfStateTotal: 39924,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 51585, Women: 24728,
				AmericanIndian: 600, Asian: 3700, Black: 2100, Hispanic: 11900,
				PacificIslander: 100, White: 24900, TwoOrMore: 1800,
				Unknown: 800, NonResident: 5685,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 54400, MidCareerPay: 97900, StemPercent: 26},
		},
		{
			Name: "University of Phoenix-Arizona", State: "Arizona",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionForProfit, DegreeLength: model.DegreeFourYear,
				InStateTuition: 9552, InStateTotal: 13957,
				OutOfStateTuition: 9552, OutOfStateTotal: 13957,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 94724, Women: 63139,
				AmericanIndian: 900, Asian: 1900, Black: 26500, Hispanic: 12300,
				PacificIslander: 900, White: 35400, TwoOrMore: 3000,
				Unknown: 8000, NonResident: 5824,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 49700, MidCareerPay: 85900, StemPercent: 3},
		},
		{
			Name: "University of Washington-Seattle Campus", State: "Washington",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 11207, InStateTotal: 27076,
				OutOfStateTuition: 36898, OutOfStateTotal: 52767,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 47400, Women: 24924,
				AmericanIndian: 300, Asian: 12000, Black: 1400, Hispanic: 3700,
				PacificIslander: 200, White: 19400, TwoOrMore: 2900,
				Unknown: 1100, NonResident: 6400,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 61700, MidCareerPay: 113400, StemPercent: 39},
		},
		{
			Name: "University of Florida", State: "Florida",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 6381, InStateTotal: 17650,
				OutOfStateTuition: 28659, OutOfStateTotal: 39928,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 52367, Women: 28915,
				AmericanIndian: 100, Asian: 4400, Black: 3100, Hispanic: 11400,
				PacificIslander: 50, White: 27500, TwoOrMore: 1400,
				Unknown: 900, NonResident: 3517,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 55400, MidCareerPay: 101500, StemPercent: 28},
		},
		{
			Name: "Columbus State Community College", State: "Ohio",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeTwoYear,
				InStateTuition: 4857, InStateTotal: 12549,
				OutOfStateTuition: 9960, OutOfStateTotal: 17652,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 27188, Women: 15298,
				AmericanIndian: 80, Asian: 900, Black: 5900, Hispanic: 900,
				PacificIslander: 30, White: 16700, TwoOrMore: 1100,
				Unknown: 900, NonResident: 678,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 36900, MidCareerPay: 64400, StemPercent: 5},
		},
		{
			Name: "Front Range Community College", State: "Colorado",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeTwoYear,
				InStateTuition: 3631, InStateTotal: 10023,
				OutOfStateTuition: 14022, OutOfStateTotal: 20414,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 18700, Women: 10621,
				AmericanIndian: 150, Asian: 700, Black: 600, Hispanic: 3600,
				PacificIslander: 40, White: 11700, TwoOrMore: 700,
				Unknown: 700, NonResident: 510,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 35500, MidCareerPay: 61700, StemPercent: 4},
		},
		{
			Name: "Carnegie Mellon University", State: "Pennsylvania",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 55816, InStateTotal: 73205,
				OutOfStateTuition: 55816, OutOfStateTotal: 73205,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 14029, Women: 6241,
				AmericanIndian: 20, Asian: 3800, Black: 600, Hispanic: 1100,
				PacificIslander: 10, White: 3900, TwoOrMore: 700,
				Unknown: 500, NonResident: 3399,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 70700, MidCareerPay: 132600, StemPercent: 60},
		},
		{
			Name: "Sweet Briar College", State: "Virginia",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 21150, InStateTotal: 34150,
				OutOfStateTuition: 21150, OutOfStateTotal: 34150,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 340, Women: 337,
				AmericanIndian: 2, Asian: 6, Black: 60, Hispanic: 30,
				PacificIslander: 1, White: 210, TwoOrMore: 14,
				Unknown: 10, NonResident: 7,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 46100, MidCareerPay: 81700, StemPercent: 11},
		},
		{
			Name: "The Citadel", State: "South Carolina",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPublic, DegreeLength: model.DegreeFourYear,
				InStateTuition: 12554, InStateTotal: 24070,
				OutOfStateTuition: 35796, OutOfStateTotal: 47312,
			},
			Diversity: &model.DiversityStats{
				TotalEnrollment: 3530, Women: 382,
				AmericanIndian: 10, Asian: 60, Black: 280, Hispanic: 180,
				PacificIslander: 10, White: 2700, TwoOrMore: 90,
				Unknown: 50, NonResident: 150,
			},
			Salary: &model.SalaryPotential{EarlyCareerPay: 55800, MidCareerPay: 101300, StemPercent: 21},
		},
		{
			Name: "Grinnell College", State: "Iowa",
			Tuition: &model.TuitionInfo{
				InstitutionType: model.InstitutionPrivate, DegreeLength: model.DegreeFourYear,
				InStateTuition: 52392, InStateTotal: 65374,
				OutOfStateTuition: 52392, OutOfStateTotal: 65374,
			},
			// No diversity survey entry for this school.
			Salary: &model.SalaryPotential{EarlyCareerPay: 54800, MidCareerPay: 103600, StemPercent: 27},
		},
	}
}
