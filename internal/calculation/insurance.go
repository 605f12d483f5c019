package calculation

import (
	"fmt"

	"github.com/rgehrsitz/budgetcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	finalExpenses         = decimal.NewFromInt(15000)
	longTermDisabilityPct = decimal.NewFromFloat(0.6)
	autoLiabilityFloor    = decimal.NewFromInt(100000)
	homeLiabilityFloor    = decimal.NewFromInt(300000)
	healthPremiumPct      = decimal.NewFromFloat(0.08)
	half                  = decimal.NewFromFloat(0.5)
	eightyPct             = decimal.NewFromFloat(0.8)
	two                   = decimal.NewFromInt(2)
	six                   = decimal.NewFromInt(6)
	termLifeThreshold     = decimal.NewFromInt(500000)

	// life income multiple by age
	lifeIncomeMultiples = steps(AtMost, 6, pair{29, 12}, pair{39, 10}, pair{50, 8})

	// premium blend: share of each coverage line charged per year
	premiumLifeRate       = decimal.NewFromFloat(0.002)
	premiumDwellingRate   = decimal.NewFromFloat(0.003)
	premiumAutoRate       = decimal.NewFromFloat(0.015)
	premiumDisabilityRate = decimal.NewFromFloat(0.02)
)

// EstimateInsuranceNeeds sizes each coverage line from the profile and scores household risk.
//
// EstimatedAnnualPremium is a fixed-percentage blend of the recommended coverages and is
// flagged with PremiumIsEstimate; it is not a quote.
func EstimateInsuranceNeeds(p domain.InsuranceProfile, opts domain.InsuranceOptions) domain.InsuranceResult {
	income := floorZero(p.AnnualIncome)
	monthly := floorZero(p.MonthlyExpenses)

	result := domain.InsuranceResult{
		Life: lifeNeed(p, opts),
		Disability: domain.DisabilityCoverage{
			ShortTerm: monthly.Mul(six),
			LongTerm:  income.Mul(longTermDisabilityPct),
		},
		Auto: domain.AutoCoverage{
			Liability:              MaxDecimal(autoLiabilityFloor, income.Mul(half)),
			ComprehensiveCollision: floorZero(p.VehicleValue).Mul(eightyPct),
		},
		Health: domain.HealthCoverage{
			EmergencyFund: monthly.Mul(six),
			AnnualPremium: income.Mul(healthPremiumPct),
		},
		PremiumIsEstimate: true,
	}

	dwelling := floorZero(p.HomeValue).Mul(eightyPct)
	result.Home = domain.HomeCoverage{
		Dwelling:         dwelling,
		PersonalProperty: dwelling.Mul(half),
		Liability:        MaxDecimal(homeLiabilityFloor, income.Mul(two)),
	}

	result.EstimatedAnnualPremium = result.Life.Recommended.Mul(premiumLifeRate).
		Add(result.Home.Dwelling.Mul(premiumDwellingRate)).
		Add(result.Auto.Liability.Mul(premiumAutoRate)).
		Add(result.Disability.LongTerm.Mul(premiumDisabilityRate)).
		Add(result.Health.AnnualPremium)

	result.Risk = AssessRisk(p)

	facts := insuranceFacts{profile: p, result: result}
	result.Recommendations = capList(EvaluateRules(insuranceRules, facts), opts.RecommendationLimit)

	return result
}

func lifeNeed(p domain.InsuranceProfile, opts domain.InsuranceOptions) domain.LifeCoverage {
	multiple := lifeIncomeMultiples.LookupInt(decimal.NewFromInt(int64(p.Age)))
	life := domain.LifeCoverage{
		IncomeMultiple:    multiple,
		IncomeReplacement: floorZero(p.AnnualIncome).Mul(decimal.NewFromInt(int64(multiple))),
		Debt:              floorZero(p.TotalDebt),
		Education:         zero,
		FinalExpenses:     finalExpenses,
		ExistingSavings:   floorZero(p.Savings),
	}
	if p.FundEducation && p.Dependents > 0 {
		life.Education = floorZero(opts.EducationPerChild).Mul(decimal.NewFromInt(int64(p.Dependents)))
	}

	need := life.IncomeReplacement.Add(life.Debt).Add(life.Education).Add(life.FinalExpenses).Sub(life.ExistingSavings)
	life.Recommended = floorZero(need)
	return life
}

// riskRule contributes points when it applies; Label names the factor in the assessment
type riskRule struct {
	Label  string
	Points func(domain.InsuranceProfile) int
}

var riskRules = []riskRule{
	{
		Label: "age",
		Points: func(p domain.InsuranceProfile) int {
			switch {
			case p.Age >= 60:
				return 2
			case p.Age >= 45:
				return 1
			}
			return 0
		},
	},
	{
		Label: "health conditions",
		Points: func(p domain.InsuranceProfile) int {
			return ClampInt(p.HealthConditionCount(), 0, 3)
		},
	},
	{
		Label: "job risk",
		Points: func(p domain.InsuranceProfile) int {
			switch p.JobRisk {
			case domain.JobRiskHigh:
				return 2
			case domain.JobRiskMedium:
				return 1
			}
			return 0
		},
	},
	{
		Label: "debt-to-income",
		Points: func(p domain.InsuranceProfile) int {
			if !p.TotalDebt.IsPositive() {
				return 0
			}
			if !p.AnnualIncome.IsPositive() {
				return 2
			}
			ratio := p.TotalDebt.Div(p.AnnualIncome)
			switch {
			case ratio.GreaterThan(decimal.NewFromFloat(0.4)):
				return 2
			case ratio.GreaterThan(decimal.NewFromFloat(0.2)):
				return 1
			}
			return 0
		},
	},
	{
		Label: "emergency fund",
		Points: func(p domain.InsuranceProfile) int {
			monthly := floorZero(p.MonthlyExpenses)
			switch {
			case p.Savings.LessThan(monthly.Mul(decimal.NewFromInt(3))):
				return 2
			case p.Savings.LessThan(monthly.Mul(six)):
				return 1
			}
			return 0
		},
	},
}

// AssessRisk sums the risk points and buckets them: >=6 high, >=3 moderate, else low
func AssessRisk(p domain.InsuranceProfile) domain.RiskAssessment {
	assessment := domain.RiskAssessment{Factors: []string{}}
	for _, r := range riskRules {
		if pts := r.Points(p); pts > 0 {
			assessment.Points += pts
			assessment.Factors = append(assessment.Factors, r.Label)
		}
	}

	switch {
	case assessment.Points >= 6:
		assessment.Level = domain.RiskHigh
	case assessment.Points >= 3:
		assessment.Level = domain.RiskModerate
	default:
		assessment.Level = domain.RiskLow
	}
	return assessment
}

type insuranceFacts struct {
	profile domain.InsuranceProfile
	result  domain.InsuranceResult
}

func missingBenefit(name string) func(insuranceFacts) bool {
	return func(f insuranceFacts) bool { return !f.profile.HasEmployerBenefit(name) }
}

var insuranceRules = []Rule[insuranceFacts, domain.Recommendation]{
	{
		Name: "emergency_fund",
		When: func(f insuranceFacts) bool {
			return f.profile.MonthlyExpenses.IsPositive() && f.profile.Savings.LessThan(f.result.Health.EmergencyFund)
		},
		Then: func(f insuranceFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "emergency_fund",
				Message: fmt.Sprintf("Build savings to %s (six months of expenses) to cover deductibles and elimination periods",
					dollars(f.result.Health.EmergencyFund)),
				Priority: domain.PriorityHigh,
			}
		},
	},
	{
		Name: "term_life",
		When: func(f insuranceFacts) bool { return f.result.Life.Recommended.GreaterThan(termLifeThreshold) },
		Then: func(f insuranceFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "life",
				Message: fmt.Sprintf("Term life is the most economical way to carry %s of coverage",
					dollars(f.result.Life.Recommended)),
				Priority: domain.PriorityMedium,
			}
		},
	},
	{
		Name: "older_home",
		When: func(f insuranceFacts) bool {
			return f.profile.HomeValue.IsPositive() && f.profile.HomeAgeYears > 20
		},
		Then: func(f insuranceFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "home",
				Message:  fmt.Sprintf("A %d-year-old home may need replacement-cost and water-backup riders", f.profile.HomeAgeYears),
				Priority: domain.PriorityMedium,
			}
		},
	},
	{
		Name: "multi_vehicle",
		When: func(f insuranceFacts) bool { return f.profile.VehicleCount > 1 },
		Then: func(insuranceFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "auto",
				Message:  "Ask for a multi-vehicle discount and bundle auto with home coverage",
				Priority: domain.PriorityLow,
			}
		},
	},
	{
		Name: "employer_life",
		When: missingBenefit(domain.BenefitLife),
		Then: func(f insuranceFacts) domain.Recommendation {
			priority := domain.PriorityMedium
			if f.profile.MaritalStatus == domain.MaritalMarried || f.profile.Dependents > 0 {
				priority = domain.PriorityHigh
			}
			return domain.Recommendation{
				Category: "life",
				Message:  "No employer life coverage; an individual term policy fills the whole need",
				Priority: priority,
			}
		},
	},
	{
		Name: "employer_disability",
		When: missingBenefit(domain.BenefitDisability),
		Then: func(insuranceFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "disability",
				Message:  "No employer disability coverage; price an individual long-term disability policy",
				Priority: domain.PriorityMedium,
			}
		},
	},
	{
		Name: "employer_health",
		When: missingBenefit(domain.BenefitHealth),
		Then: func(insuranceFacts) domain.Recommendation {
			return domain.Recommendation{
				Category: "health",
				Message:  "No employer health plan; compare marketplace plans during open enrollment",
				Priority: domain.PriorityHigh,
			}
		},
	},
}
