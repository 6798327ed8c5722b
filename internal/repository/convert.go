package repository

import (
	"database/sql"

	"naplan-prep/internal/domain"
	"naplan-prep/internal/repository/models"
	"naplan-prep/internal/util"
)

func toModelQuiz(q *domain.Quiz) *models.Quiz {
	m := &models.Quiz{
		ID:           q.ID,
		Name:         q.Name,
		Source:       q.Source,
		Status:       util.StringToNullString(q.Status),
		SetNumber:    q.SetNumber,
		IsFullLength: models.Flag(q.IsFullLength),
		IsTrial:      models.Flag(q.IsTrial),
		TierOrder:    q.TierOrder,
		IsActive:     models.Flag(q.IsActive),
		ParseError:   util.StringToNullString(q.ParseError),
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
	if q.YearLevel != nil {
		m.YearLevel = sql.NullInt64{Int64: int64(*q.YearLevel), Valid: true}
	}
	if q.Subject != nil {
		m.Subject = util.StringToNullString(string(*q.Subject))
	}
	if q.Difficulty != nil {
		m.Difficulty = util.StringToNullString(string(*q.Difficulty))
	}
	if q.Tier != nil {
		m.Tier = util.StringToNullString(string(*q.Tier))
	}
	if !q.DateCreated.IsZero() {
		m.DateCreated = sql.NullTime{Time: q.DateCreated, Valid: true}
	}
	return m
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	q := &domain.Quiz{
		ID:           m.ID,
		Name:         m.Name,
		Source:       m.Source,
		Status:       m.Status.String,
		SetNumber:    m.SetNumber,
		IsFullLength: bool(m.IsFullLength),
		IsTrial:      bool(m.IsTrial),
		TierOrder:    m.TierOrder,
		IsActive:     bool(m.IsActive),
		ParseError:   m.ParseError.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.YearLevel.Valid {
		y := int(m.YearLevel.Int64)
		q.YearLevel = &y
	}
	if m.Subject.Valid {
		s := domain.Subject(m.Subject.String)
		q.Subject = &s
	}
	if m.Difficulty.Valid {
		d := domain.Difficulty(m.Difficulty.String)
		q.Difficulty = &d
	}
	if m.Tier.Valid {
		// CHAR(1) columns may come back padded on some drivers
		if t, ok := domain.ParseTier(m.Tier.String); ok {
			q.Tier = &t
		}
	}
	if m.DateCreated.Valid {
		q.DateCreated = m.DateCreated.Time
	}
	return q
}

func toModelBundle(b *domain.Bundle) *models.Bundle {
	return &models.Bundle{
		BundleID:         b.BundleID,
		BundleName:       b.BundleName,
		Description:      util.StringToNullString(b.Description),
		YearLevel:        b.YearLevel,
		Subjects:         models.StringSlice(b.Subjects),
		Tier:             string(b.Tier),
		QuizIDsOwn:       models.StringSlice(b.QuizIDsOwn),
		QuizIDsWithLower: models.StringSlice(b.QuizIDsWithLower),
		PriceCents:       b.PriceCents,
		IsActive:         models.Flag(b.IsActive),
		QuizCount:        b.QuizCount,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func toDomainBundle(m *models.Bundle) *domain.Bundle {
	tier, _ := domain.ParseTier(m.Tier)
	return &domain.Bundle{
		BundleID:         m.BundleID,
		BundleName:       m.BundleName,
		Description:      m.Description.String,
		YearLevel:        m.YearLevel,
		Subjects:         []string(m.Subjects),
		Tier:             tier,
		QuizIDsOwn:       []string(m.QuizIDsOwn),
		QuizIDsWithLower: []string(m.QuizIDsWithLower),
		PriceCents:       m.PriceCents,
		IsActive:         bool(m.IsActive),
		QuizCount:        m.QuizCount,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toModelPurchase(p *domain.Purchase) *models.Purchase {
	return &models.Purchase{
		ID:            p.ID,
		ParentID:      p.ParentID,
		BundleID:      p.BundleID,
		ChildIDs:      models.StringSlice(p.ChildIDs),
		IncludeLower:  models.Flag(p.IncludeLower),
		AmountCents:   p.AmountCents,
		Status:        string(p.Status),
		PaymentRef:    util.StringToNullString(p.PaymentRef),
		FailureReason: util.StringToNullString(p.FailureReason),
		PaidAt:        util.TimePtrToNullTime(p.PaidAt),
		ProvisionedAt: util.TimePtrToNullTime(p.ProvisionedAt),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toDomainPurchase(m *models.Purchase) *domain.Purchase {
	return &domain.Purchase{
		ID:            m.ID,
		ParentID:      m.ParentID,
		BundleID:      m.BundleID,
		ChildIDs:      []string(m.ChildIDs),
		IncludeLower:  bool(m.IncludeLower),
		AmountCents:   m.AmountCents,
		Status:        domain.PurchaseStatus(m.Status),
		PaymentRef:    m.PaymentRef.String,
		FailureReason: m.FailureReason.String,
		PaidAt:        util.NullTimeToPtr(m.PaidAt),
		ProvisionedAt: util.NullTimeToPtr(m.ProvisionedAt),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toModelSyncRun(r *domain.SyncRun) *models.SyncRun {
	unparseable := make(models.UnparseableList, len(r.Unparseable))
	for i, u := range r.Unparseable {
		unparseable[i] = models.UnparseableEntry{ID: u.ID, Name: u.Name, Missing: u.Missing}
	}
	return &models.SyncRun{
		ID:                 r.ID,
		StartedAt:          r.StartedAt,
		FinishedAt:         util.TimePtrToNullTime(r.FinishedAt),
		Status:             string(r.Status),
		QuizzesFetched:     r.QuizzesFetched,
		QuizzesParsed:      r.QuizzesParsed,
		QuizzesUnparseable: r.QuizzesUnparseable,
		QuizzesTrial:       r.QuizzesTrial,
		BundlesUpserted:    r.BundlesUpserted,
		BundlesDeactivated: r.BundlesDeactivated,
		PricingWarnings:    models.StringSlice(r.PricingWarnings),
		Unparseable:        unparseable,
		ErrorMessage:       util.StringToNullString(r.Error),
	}
}

func toDomainSyncRun(m *models.SyncRun) *domain.SyncRun {
	unparseable := make([]domain.UnparseableQuiz, len(m.Unparseable))
	for i, u := range m.Unparseable {
		unparseable[i] = domain.UnparseableQuiz{ID: u.ID, Name: u.Name, Missing: u.Missing}
	}
	return &domain.SyncRun{
		ID:                 m.ID,
		StartedAt:          m.StartedAt,
		FinishedAt:         util.NullTimeToPtr(m.FinishedAt),
		Status:             domain.SyncStatus(m.Status),
		QuizzesFetched:     m.QuizzesFetched,
		QuizzesParsed:      m.QuizzesParsed,
		QuizzesUnparseable: m.QuizzesUnparseable,
		QuizzesTrial:       m.QuizzesTrial,
		BundlesUpserted:    m.BundlesUpserted,
		BundlesDeactivated: m.BundlesDeactivated,
		PricingWarnings:    []string(m.PricingWarnings),
		Unparseable:        unparseable,
		Error:              m.ErrorMessage.String,
	}
}
