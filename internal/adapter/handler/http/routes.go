package http

import (
	"github.com/labstack/echo/v4"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/middleware/auth"
)

// Handlers groups every HTTP handler of the service
type Handlers struct {
	Customers *CustomerHandler
	Reference *ReferenceHandler
	Interests *InterestHandler
	Cards     *CardHandler
	Admins    *AdminHandler
	Reports   *ReportHandler
}

// Register mounts all routes on e. Admin routes require a token issued by
// POST /admin/login/, except POST /admin/ while no admin exists.
func (h *Handlers) Register(e *echo.Echo, jwtConfig auth.JWTConfig) {
	// Public routes
	e.POST("/customer/create-or-eligible/", h.Customers.CreateOrCheckEligibility)
	e.GET("/banks/pincode/:pincodes/", h.Reference.BanksByPincodes)
	e.GET("/customer-interests/", h.Interests.List)
	e.POST("/customer-interests/", h.Interests.Record)
	e.GET("/customer-interests/customer/:customer_id/", h.Interests.ListByCustomer)
	e.GET("/cards/active/", h.Cards.ListActive)
	e.POST("/admin/login/", h.Admins.Login)

	bootstrapConfig := jwtConfig
	bootstrapConfig.Skipper = h.Admins.AllowOpenCreate
	e.POST("/admin/", h.Admins.Create, auth.JWTMiddleware(bootstrapConfig))

	// Protected routes
	protected := e.Group("", auth.JWTMiddleware(jwtConfig))

	protected.GET("/admin/", h.Admins.List)
	protected.PUT("/admin/:id/", h.Admins.Update)

	protected.GET("/banks/", h.Reference.ListBanks)
	protected.POST("/banks/", h.Reference.CreateBank)
	protected.GET("/banks/:id/", h.Reference.GetBank)
	protected.PUT("/banks/:id/", h.Reference.UpdateBank)
	protected.DELETE("/banks/:id/", h.Reference.DeleteBank)
	protected.POST("/banks/:id/logo/", h.Reference.UploadBankLogo)

	protected.GET("/products/", h.Reference.ListProducts)
	protected.POST("/products/", h.Reference.CreateProduct)
	protected.GET("/products/bank/:bank_id/", h.Reference.ListProductsByBank)
	protected.GET("/products/:id/", h.Reference.GetProduct)
	protected.PUT("/products/:id/", h.Reference.UpdateProduct)
	protected.DELETE("/products/:id/", h.Reference.DeleteProduct)

	protected.GET("/company-categories/", h.Reference.ListCategories)
	protected.POST("/company-categories/", h.Reference.CreateCategory)
	protected.GET("/company-categories/:id/", h.Reference.GetCategory)
	protected.PUT("/company-categories/:id/", h.Reference.UpdateCategory)
	protected.DELETE("/company-categories/:id/", h.Reference.DeleteCategory)

	protected.GET("/companies/", h.Reference.ListCompanies)
	protected.POST("/companies/", h.Reference.CreateCompany)
	protected.GET("/companies/:id/", h.Reference.GetCompany)
	protected.PUT("/companies/:id/", h.Reference.UpdateCompany)
	protected.DELETE("/companies/:id/", h.Reference.DeleteCompany)

	protected.GET("/salary-criteria/", h.Reference.ListSalaryCriteria)
	protected.POST("/salary-criteria/", h.Reference.CreateSalaryCriteria)
	protected.GET("/salary-criteria/:id/", h.Reference.GetSalaryCriteria)
	protected.PUT("/salary-criteria/:id/", h.Reference.UpdateSalaryCriteria)
	protected.DELETE("/salary-criteria/:id/", h.Reference.DeleteSalaryCriteria)

	protected.GET("/loanrules/", h.Reference.ListLoanRules)
	protected.POST("/loanrules/", h.Reference.CreateLoanRule)
	protected.GET("/loanrules/bank/:bank_id/", h.Reference.ListLoanRulesByBank)
	protected.GET("/loanrules/:id/", h.Reference.GetLoanRule)
	protected.PUT("/loanrules/:id/", h.Reference.UpdateLoanRule)
	protected.DELETE("/loanrules/:id/", h.Reference.DeleteLoanRule)

	protected.GET("/cards/", h.Cards.List)
	protected.POST("/cards/", h.Cards.Create)
	protected.GET("/cards/:id/", h.Cards.Get)
	protected.PUT("/cards/:id/", h.Cards.Update)
	protected.DELETE("/cards/:id/", h.Cards.Delete)
	protected.POST("/cards/:id/image/", h.Cards.UploadImage)

	protected.GET("/get-all-eligiblity-checks/", h.Reports.LatestChecks)
}
