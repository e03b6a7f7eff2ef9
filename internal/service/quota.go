package service

import (
	"strings"
	"time"

	"github.com/angelolorensi/vending-machine-api/internal/apperror"
	"github.com/angelolorensi/vending-machine-api/internal/model"
)

// Quota bucket names. Category names are matched case-insensitively;
// categories outside these three buckets are exempt from the per-category
// count limits but still count toward the aggregate point limit.
const (
	categoryBeverages = "beverages"
	categorySnacks    = "snacks"
	categoryMeals     = "meals"
)

// CheckDailyQuota evaluates whether purchasing product would breach the
// classification's daily limits, given the employee's transaction history.
//
// asOf fixes "today": only transactions with status completed whose
// transaction_time falls on asOf's calendar day (in asOf's location) are
// counted. The category count check runs first and short-circuits; the
// aggregate point check uses strict > so a purchase that lands exactly on
// the limit is allowed.
func CheckDailyQuota(classification *model.Classification, product *model.Product, history []model.Transaction, asOf time.Time) error {
	today := asOf.In(asOf.Location())
	y, m, d := today.Date()

	var todays []model.Transaction
	for _, t := range history {
		if t.Status != model.TransactionCompleted {
			continue
		}
		ty, tm, td := t.TransactionTime.In(asOf.Location()).Date()
		if ty == y && tm == m && td == d {
			todays = append(todays, t)
		}
	}

	categoryName := ""
	if product.ProductCategory != nil {
		categoryName = product.ProductCategory.Name
	}

	if err := checkCategoryLimit(classification, categoryName, todays); err != nil {
		return err
	}

	spent := 0
	for _, t := range todays {
		spent += t.PointsDeducted
	}
	if spent+product.PricePoints > classification.DailyPointLimit {
		return apperror.DailyLimitExceeded("Daily point limit would be exceeded")
	}
	return nil
}

func checkCategoryLimit(classification *model.Classification, categoryName string, todays []model.Transaction) error {
	count := 0
	for _, t := range todays {
		if t.Product == nil || t.Product.ProductCategory == nil {
			continue
		}
		if strings.EqualFold(t.Product.ProductCategory.Name, categoryName) {
			count++
		}
	}

	switch strings.ToLower(categoryName) {
	case categoryBeverages:
		if count >= classification.DailyJuiceLimit {
			return apperror.DailyLimitExceeded("Daily juice limit exceeded")
		}
	case categorySnacks:
		if count >= classification.DailySnackLimit {
			return apperror.DailyLimitExceeded("Daily snack limit exceeded")
		}
	case categoryMeals:
		if count >= classification.DailyMealLimit {
			return apperror.DailyLimitExceeded("Daily meal limit exceeded")
		}
	}
	return nil
}
