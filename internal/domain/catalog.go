package domain

// Closed vocabularies shared by jobs, templates and profiles.
var (
	JobCategories = []string{
		"Technology", "Marketing", "Sales", "Customer Service", "Education",
		"Healthcare", "Hospitality", "Retail", "Finance", "Design",
		"Writing", "Delivery", "Data Entry", "Other",
	}
	JobTypes          = []string{"Remote", "Onsite", "Hybrid"}
	WorkingHours      = []string{"1 Hour/Day", "2 Hours/Day", "3-4 Hours/Day", "Flexible", "Weekends", "Evening"}
	SalaryPeriods     = []string{"hourly", "weekly", "monthly"}
	TemplatePeriods   = []string{"hourly", "daily", "weekly", "monthly"}
	CompanySizes      = []string{"1-10", "11-50", "51-200", "201-500", "500+"}
	DefaultCountry    = "India"
	DefaultCurrency   = "INR"
	DefaultPeriod     = "monthly"
	DefaultJobType    = "Onsite"
	DefaultWorkingHrs = "Flexible"
)

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func IsJobCategory(v string) bool  { return contains(JobCategories, v) }
func IsJobType(v string) bool      { return contains(JobTypes, v) }
func IsWorkingHours(v string) bool { return contains(WorkingHours, v) }
func IsSalaryPeriod(v string) bool { return contains(SalaryPeriods, v) }
