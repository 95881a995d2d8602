package models

// Plan is a billing plan offered to dashboard operators.
type Plan struct {
	PlanID  string       `json:"plan_id"`
	Title   string       `json:"title"`
	Pricing *PlanPricing `json:"pricing,omitempty"`
	Perks   []PlanPerk   `json:"perks"`
	Beta    bool         `json:"beta,omitempty"`
}

// PlanPricing is a plan's price per billing period.
type PlanPricing struct {
	Price  int64  `json:"price"`
	Period string `json:"period"`
}

// PlanPerk is one selling point of a plan.
type PlanPerk struct {
	Desc  string `json:"desc"`
	Terms string `json:"terms,omitempty"`
}

// FeaturesTable is the plan comparison matrix shown on pricing pages.
type FeaturesTable struct {
	Plans    []string       `json:"plans"`
	Features []FeatureRow   `json:"features"`
}

// FeatureRow is one row of the comparison matrix.
type FeatureRow struct {
	Feature string   `json:"feature"`
	Values  []string `json:"values"`
	Terms   string   `json:"terms,omitempty"`
}

// Account is the single global dashboard-operator identity. It is not
// scoped to a project. SSOToken is a signed assertion of the account's
// email and name, usable for SSO handoff into projects.
type Account struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Plan     Plan   `json:"plan"`
	SSOToken string `json:"sso_token,omitempty"`
}

// AccountSignup is the signup payload for the dashboard operator.
type AccountSignup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountLogin is the dashboard login payload.
type AccountLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountUpdate is a partial update of the account.
type AccountUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// AccountBindResult reports the logged-in account, if any.
type AccountBindResult struct {
	Account *Account `json:"account,omitempty"`
}

// PlansResult is the pricing page payload.
type PlansResult struct {
	Plans         []Plan        `json:"plans"`
	FeaturesTable FeaturesTable `json:"features_table"`
}

// LegalResult carries the legal documents.
type LegalResult struct {
	Terms   string `json:"terms"`
	Privacy string `json:"privacy"`
}
