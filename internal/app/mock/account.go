package mock

import (
	"github.com/echoboard/echoboard/internal/app/system/accountauth"
	"github.com/echoboard/echoboard/internal/app/system/apierror"
	"github.com/echoboard/echoboard/internal/app/system/ssotoken"
	"github.com/echoboard/echoboard/internal/domain/models"
	"go.uber.org/zap"
)

// Static pricing-page data. The mock serves a fixed catalog; the ids
// are stable so dashboard flows can reference plans across calls.

const (
	termsProjects     = "You can create separate boards each having their own set of users and content"
	termsActiveUsers  = "Contributors are users that have signed up or made public contributions counted on a rolling 3 month median"
	termsAnalytics    = "View top ideas based on return on investment considering popularity, opportunity and complexity. Explore data based on trends, demographics, and custom metrics."
	termsVoting       = "Voting and expressions allows prioritization of value for each idea."
	termsCreditSystem = "Credit System allows fine-grained prioritization of value for each idea."
	termsCredit       = "Spend time credits on future EchoBoard development features"
)

var trialPlan = models.Plan{
	PlanID: "EF6E893B-7B39-4A59-8ADA-4101E6B7DC40",
	Title:  "Trial",
	Perks:  []models.PlanPerk{},
}

var availablePlans = []models.Plan{
	{
		PlanID:  "E5A119e3-1477-4621-A9EA-85355B34A6D4",
		Title:   "Startup",
		Pricing: &models.PlanPricing{Price: 30, Period: "monthly"},
		Perks: []models.PlanPerk{
			{Desc: "Voting and expressions", Terms: termsVoting},
			{Desc: "Unlimited boards", Terms: termsProjects},
			{Desc: "Up to 100 contributors", Terms: termsActiveUsers},
			{Desc: "Feature credits", Terms: termsCredit},
		},
	},
	{
		PlanID:  "9C7EA3A5-B4AE-46AA-9C2E-98659BC65B89",
		Title:   "Standard",
		Pricing: &models.PlanPricing{Price: 75, Period: "monthly"},
		Perks: []models.PlanPerk{
			{Desc: "Credit System", Terms: termsCreditSystem},
			{Desc: "Single Sign-On"},
			{Desc: "Up to 1,000 contributors", Terms: termsActiveUsers},
			{Desc: "Feature credits", Terms: termsCredit},
		},
	},
	{
		PlanID: "CDBF4982-1805-4352-8A57-824AFB565973",
		Title:  "Analytic",
		Perks: []models.PlanPerk{
			{Desc: "Powerful Analytics", Terms: termsAnalytics},
			{Desc: "Multi-agent"},
			{Desc: "Full API access"},
			{Desc: "Unlimited contributors", Terms: termsActiveUsers},
		},
		Beta: true,
	},
}

var featuresTable = models.FeaturesTable{
	Plans: []string{"Startup", "Standard", "Analytic"},
	Features: []models.FeatureRow{
		{Feature: "Boards", Values: []string{"No limit", "No limit", "No limit"}, Terms: termsProjects},
		{Feature: "Contributors", Values: []string{"100", "1,000", "No limit"}, Terms: termsActiveUsers},
		{Feature: "Layout and Style customization", Values: []string{"Yes", "Yes", "Yes"}, Terms: "Ideas, Roadmap, FAQ, Knowledge base, etc..."},
		{Feature: "Voting and expressions", Values: []string{"Yes", "Yes", "Yes"}, Terms: termsVoting},
		{Feature: "Credit System", Values: []string{"No", "Yes", "Yes"}, Terms: termsCreditSystem},
		{Feature: "Single Sign-On", Values: []string{"No", "Yes", "Yes"}, Terms: termsCreditSystem},
		{Feature: "Powerful Analytics", Values: []string{"No", "No", "Yes"}, Terms: termsAnalytics},
		{Feature: "Full API access", Values: []string{"No", "No", "Yes"}},
	},
}

// PlansGet serves the fixed plan catalog and comparison matrix.
func (s *Server) PlansGet() (models.PlansResult, error) {
	return respond(s, models.PlansResult{Plans: availablePlans, FeaturesTable: featuresTable})
}

// LegalGet serves placeholder legal documents.
func (s *Server) LegalGet() (models.LegalResult, error) {
	return respond(s, models.LegalResult{
		Terms:   "Here are Terms of Service",
		Privacy: "Here is a privacy policy.",
	})
}

// SupportMessage accepts a support request and logs it; the mock has no
// ticketing backend.
func (s *Server) SupportMessage(content string) error {
	s.logger.Info("support message received", zap.String("content", content))
	s.waitLatency()
	return nil
}

// AccountSignup creates the single dashboard-operator account on the
// trial plan and logs it in. The account's SSO token is minted at signup
// so the dashboard can hand the operator off into any project as a
// regular user.
func (s *Server) AccountSignup(signup models.AccountSignup) (models.Account, error) {
	token, err := s.signer.Sign(ssotoken.Claims{
		GUID:  signup.Email,
		Email: signup.Email,
		Name:  signup.Name,
	})
	if err != nil {
		return fail[models.Account](s, err)
	}
	hash, err := accountauth.HashPassword(signup.Password)
	if err != nil {
		return fail[models.Account](s, err)
	}

	account := models.Account{
		Email:    signup.Email,
		Name:     signup.Name,
		Plan:     trialPlan,
		SSOToken: token,
	}
	s.account = &account
	s.accountPassHash = hash
	s.loggedIn = true
	s.logger.Info("account created", zap.String("email", signup.Email))
	return respond(s, account)
}

// AccountLogin checks the credentials against the stored account. A
// missing account, wrong email, and wrong password are indistinguishable
// to the caller.
func (s *Server) AccountLogin(login models.AccountLogin) (models.Account, error) {
	if s.account == nil ||
		login.Email != s.account.Email ||
		!accountauth.CheckPassword(login.Password, s.accountPassHash) {
		return fail[models.Account](s, apierror.Forbidden("Username or email incorrect"))
	}
	s.loggedIn = true
	return respond(s, *s.account)
}

// AccountLogout ends the dashboard session. The account itself persists.
func (s *Server) AccountLogout() error {
	s.loggedIn = false
	s.waitLatency()
	return nil
}

// AccountUpdate patches the account. Empty fields are left untouched.
func (s *Server) AccountUpdate(update models.AccountUpdate) (models.Account, error) {
	if s.account == nil {
		return fail[models.Account](s, apierror.Forbidden("Not logged in"))
	}
	if update.Name != nil && *update.Name != "" {
		s.account.Name = *update.Name
	}
	if update.Email != nil && *update.Email != "" {
		s.account.Email = *update.Email
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := accountauth.HashPassword(*update.Password)
		if err != nil {
			return fail[models.Account](s, err)
		}
		s.accountPassHash = hash
	}
	return respond(s, *s.account)
}

// AccountBind reports the logged-in account, if any. Never an error;
// an empty result means no session.
func (s *Server) AccountBind() (models.AccountBindResult, error) {
	if !s.loggedIn || s.account == nil {
		return respond(s, models.AccountBindResult{})
	}
	return respond(s, models.AccountBindResult{Account: s.account})
}
