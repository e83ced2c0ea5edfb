package domain

import "fmt"

// SettingsPatch is a partial update of Settings. Every field is optional;
// nil means "leave unchanged". Replaces the loosely-typed update-by-field-
// name dispatch of earlier revisions: a patch cannot address an unknown
// field, and each present field is validated before anything is applied.
type SettingsPatch struct {
	Principal             *float64 `json:"principal,omitempty" yaml:"principal,omitempty"`
	Contribution          *float64 `json:"contribution,omitempty" yaml:"contribution,omitempty"`
	ContributionFrequency *int     `json:"contribution_frequency,omitempty" yaml:"contribution_frequency,omitempty"`
	AnnualReturn          *float64 `json:"annual_return,omitempty" yaml:"annual_return,omitempty"`
	CompoundingFrequency  *int     `json:"compounding_frequency,omitempty" yaml:"compounding_frequency,omitempty"`
	Years                 *float64 `json:"years,omitempty" yaml:"years,omitempty"`
	FundExpenseRatio      *float64 `json:"fund_expense_ratio,omitempty" yaml:"fund_expense_ratio,omitempty"`
	PlatformFee           *float64 `json:"platform_fee,omitempty" yaml:"platform_fee,omitempty"`
	InflationRate         *float64 `json:"inflation_rate,omitempty" yaml:"inflation_rate,omitempty"`
	AnnualExpenses        *float64 `json:"annual_expenses,omitempty" yaml:"annual_expenses,omitempty"`
	PurchasePrice         *float64 `json:"purchase_price,omitempty" yaml:"purchase_price,omitempty"`
	PurchaseDate          *string  `json:"purchase_date,omitempty" yaml:"purchase_date,omitempty"`
	Shares                *float64 `json:"shares,omitempty" yaml:"shares,omitempty"`
	TargetBalance         *float64 `json:"target_balance,omitempty" yaml:"target_balance,omitempty"`
}

// Apply validates the patch against s and returns the updated settings.
// On error s is returned unchanged; a patch is applied entirely or not at
// all.
func (p SettingsPatch) Apply(s Settings) (Settings, error) {
	if p.Principal != nil && *p.Principal < 0 {
		return s, fmt.Errorf("principal cannot be negative")
	}
	if p.Contribution != nil && *p.Contribution < 0 {
		return s, fmt.Errorf("contribution cannot be negative")
	}
	if p.ContributionFrequency != nil && !ValidContributionFrequency(*p.ContributionFrequency) {
		return s, fmt.Errorf("contribution frequency must be one of %v, got %d", ContributionFrequencies, *p.ContributionFrequency)
	}
	if p.CompoundingFrequency != nil && !ValidCompoundingFrequency(*p.CompoundingFrequency) {
		return s, fmt.Errorf("compounding frequency must be one of %v, got %d", CompoundingFrequencies, *p.CompoundingFrequency)
	}
	if p.Years != nil && *p.Years <= 0 {
		return s, fmt.Errorf("years must be positive")
	}
	if p.FundExpenseRatio != nil && *p.FundExpenseRatio < 0 {
		return s, fmt.Errorf("fund expense ratio cannot be negative")
	}
	if p.PlatformFee != nil && *p.PlatformFee < 0 {
		return s, fmt.Errorf("platform fee cannot be negative")
	}
	if p.AnnualExpenses != nil && *p.AnnualExpenses < 0 {
		return s, fmt.Errorf("annual expenses cannot be negative")
	}
	if p.Shares != nil && *p.Shares < 0 {
		return s, fmt.Errorf("shares cannot be negative")
	}

	out := s
	if p.Principal != nil {
		out.Principal = *p.Principal
	}
	if p.Contribution != nil {
		out.Contribution = *p.Contribution
	}
	if p.ContributionFrequency != nil {
		out.ContributionFrequency = *p.ContributionFrequency
	}
	if p.AnnualReturn != nil {
		out.AnnualReturn = *p.AnnualReturn
	}
	if p.CompoundingFrequency != nil {
		out.CompoundingFrequency = *p.CompoundingFrequency
	}
	if p.Years != nil {
		out.Years = *p.Years
	}
	if p.FundExpenseRatio != nil {
		out.FundExpenseRatio = *p.FundExpenseRatio
	}
	if p.PlatformFee != nil {
		out.PlatformFee = *p.PlatformFee
	}
	if p.InflationRate != nil {
		out.InflationRate = *p.InflationRate
	}
	if p.AnnualExpenses != nil {
		out.AnnualExpenses = *p.AnnualExpenses
	}
	if p.PurchasePrice != nil {
		out.PurchasePrice = *p.PurchasePrice
	}
	if p.PurchaseDate != nil {
		out.PurchaseDate = *p.PurchaseDate
	}
	if p.Shares != nil {
		out.Shares = *p.Shares
	}
	if p.TargetBalance != nil {
		out.TargetBalance = *p.TargetBalance
	}
	return out, nil
}
