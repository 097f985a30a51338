package backend

import (
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// Backend payloads use camelCase keys and Mongo-style _id identifiers.

type paginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type adminDTO struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

type loginDTO struct {
	Token             string    `json:"token"`
	RequiresTwoFactor bool      `json:"requiresTwoFactor"`
	TwoFactorRequired bool      `json:"twoFactorRequired"`
	TempToken         string    `json:"tempToken"`
	Admin             *adminDTO `json:"admin"`
}

type twoFactorSetupDTO struct {
	OTPAuthURL string `json:"otpauthUrl"`
	Secret     string `json:"secret"`
}

type statsDTO struct {
	TotalUsers      int     `json:"totalUsers"`
	TotalSellers    int     `json:"totalSellers"`
	TotalProducts   int     `json:"totalProducts"`
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	OpenTickets     int     `json:"openTickets"`
	PendingSellers  int     `json:"pendingSellers"`
	PendingProducts int     `json:"pendingProducts"`
}

type categoryDTO struct {
	ID            string            `json:"_id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Image         string            `json:"image"`
	ProductCount  int               `json:"productCount"`
	SubCategories []*subCategoryDTO `json:"subCategories"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

type subCategoryDTO struct {
	ID           string    `json:"_id"`
	CategoryID   string    `json:"category"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type refDTO struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type productDTO struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	DiscountPrice   float64   `json:"discountPrice"`
	Stock           int       `json:"stock"`
	Images          []string  `json:"images"`
	ApprovalStatus  string    `json:"approvalStatus"`
	RejectionReason string    `json:"rejectionReason"`
	Seller          *refDTO   `json:"seller"`
	Category        *refDTO   `json:"category"`
	CreatedAt       time.Time `json:"createdAt"`
}

type productsPageDTO struct {
	Products   []*productDTO `json:"products"`
	Pagination paginationDTO `json:"pagination"`
}

type sellerDTO struct {
	ID              string     `json:"_id"`
	ShopName        string     `json:"shopName"`
	OwnerName       string     `json:"ownerName"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	BusinessAddress string     `json:"businessAddress"`
	IsVerified      bool       `json:"isVerified"`
	IsApproved      bool       `json:"isApproved"`
	Status          string     `json:"status"`
	MembershipStart *time.Time `json:"membershipStart"`
	MembershipEnd   *time.Time `json:"membershipEnd"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type sellersPageDTO struct {
	Sellers    []*sellerDTO  `json:"sellers"`
	Pagination paginationDTO `json:"pagination"`
}

type bannerDTO struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type blogDTO struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Views       int       `json:"views"`
	Author      *refDTO   `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type blogsPageDTO struct {
	Blogs      []*blogDTO    `json:"blogs"`
	Pagination paginationDTO `json:"pagination"`
}

type warehouseDTO struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postalCode"`
	Phone      string    `json:"phone"`
	IsPrimary  bool      `json:"isPrimary"`
	CreatedAt  time.Time `json:"createdAt"`
}

type warehouseRequestDTO struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
	Phone      string `json:"phone,omitempty"`
	IsPrimary  bool   `json:"isPrimary"`
}

type requesterDTO struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ticketMessageDTO struct {
	ID         string    `json:"_id"`
	SenderRole string    `json:"senderRole"`
	SenderName string    `json:"senderName"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ticketDTO struct {
	ID        string              `json:"_id"`
	Subject   string              `json:"subject"`
	Status    string              `json:"status"`
	User      *requesterDTO       `json:"user"`
	Messages  []*ticketMessageDTO `json:"messages"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// --- Mapper functions ---

func toAdminDomain(data *adminDTO) *entity.AdminProfile {
	if data == nil {
		return nil
	}

	return &entity.AdminProfile{
		ID:               data.ID,
		Name:             data.Name,
		Email:            data.Email,
		Role:             data.Role,
		TwoFactorEnabled: data.TwoFactorEnabled,
	}
}

func toStatsDomain(data *statsDTO) *entity.DashboardStats {
	return &entity.DashboardStats{
		TotalUsers:      data.TotalUsers,
		TotalSellers:    data.TotalSellers,
		TotalProducts:   data.TotalProducts,
		TotalOrders:     data.TotalOrders,
		TotalRevenue:    data.TotalRevenue,
		OpenTickets:     data.OpenTickets,
		PendingSellers:  data.PendingSellers,
		PendingProducts: data.PendingProducts,
	}
}

func toCategoryDomain(data *categoryDTO) *entity.Category {
	if data == nil {
		return nil
	}

	subCategories := make([]*entity.SubCategory, 0, len(data.SubCategories))
	for _, sub := range data.SubCategories {
		if sub == nil {
			continue
		}
		if sub.CategoryID == "" {
			sub.CategoryID = data.ID
		}
		subCategories = append(subCategories, toSubCategoryDomain(sub))
	}

	return &entity.Category{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Image:         data.Image,
		ProductCount:  data.ProductCount,
		SubCategories: subCategories,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toSubCategoryDomain(data *subCategoryDTO) *entity.SubCategory {
	if data == nil {
		return nil
	}

	return &entity.SubCategory{
		ID:           data.ID,
		CategoryID:   data.CategoryID,
		Name:         data.Name,
		Description:  data.Description,
		Image:        data.Image,
		ProductCount: data.ProductCount,
		CreatedAt:    data.CreatedAt,
	}
}

func toProductDomain(data *productDTO) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:              data.ID,
		Name:            data.Name,
		Description:     data.Description,
		Price:           data.Price,
		DiscountPrice:   data.DiscountPrice,
		Stock:           data.Stock,
		Images:          data.Images,
		Status:          entity.ApprovalStatus(data.ApprovalStatus),
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	if data.Seller != nil {
		product.SellerID = data.Seller.ID
		product.SellerName = data.Seller.Name
	}
	if data.Category != nil {
		product.CategoryID = data.Category.ID
		product.CategoryName = data.Category.Name
	}

	return product
}

func toSellerDomain(data *sellerDTO) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:              data.ID,
		ShopName:        data.ShopName,
		OwnerName:       data.OwnerName,
		Email:           data.Email,
		Phone:           data.Phone,
		BusinessAddress: data.BusinessAddress,
		IsVerified:      data.IsVerified,
		IsApproved:      data.IsApproved,
		Status:          entity.SellerStatus(data.Status),
		MembershipStart: data.MembershipStart,
		MembershipEnd:   data.MembershipEnd,
		CreatedAt:       data.CreatedAt,
	}
}

func toBannerDomain(data *bannerDTO) *entity.Banner {
	if data == nil {
		return nil
	}

	bannerType, _ := entity.ParseBannerType(data.Type)

	return &entity.Banner{
		ID:        data.ID,
		Type:      bannerType,
		Title:     data.Title,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
	}
}

func toBlogDomain(data *blogDTO) *entity.Blog {
	if data == nil {
		return nil
	}

	blog := &entity.Blog{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Image:       data.Image,
		Views:       data.Views,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Author != nil {
		blog.AuthorID = data.Author.ID
		blog.AuthorName = data.Author.Name
	}

	return blog
}

func toWarehouseDomain(data *warehouseDTO) *entity.Warehouse {
	if data == nil {
		return nil
	}

	return &entity.Warehouse{
		ID:         data.ID,
		Name:       data.Name,
		Address:    data.Address,
		City:       data.City,
		State:      data.State,
		Country:    data.Country,
		PostalCode: data.PostalCode,
		Phone:      data.Phone,
		IsPrimary:  data.IsPrimary,
		CreatedAt:  data.CreatedAt,
	}
}

func fromWarehouseDraft(draft *entity.WarehouseDraft) *warehouseRequestDTO {
	return &warehouseRequestDTO{
		Name:       draft.Name,
		Address:    draft.Address,
		City:       draft.City,
		State:      draft.State,
		Country:    draft.Country,
		PostalCode: draft.PostalCode,
		Phone:      draft.Phone,
		IsPrimary:  draft.IsPrimary,
	}
}

func toTicketDomain(data *ticketDTO) *entity.SupportTicket {
	if data == nil {
		return nil
	}

	ticket := &entity.SupportTicket{
		ID:        data.ID,
		Subject:   data.Subject,
		Status:    entity.TicketStatus(data.Status),
		Messages:  make([]*entity.TicketMessage, 0, len(data.Messages)),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.User != nil {
		ticket.RequesterID = data.User.ID
		ticket.RequesterName = data.User.Name
		ticket.RequesterEmail = data.User.Email
	}
	for _, msg := range data.Messages {
		if msg == nil {
			continue
		}
		ticket.Messages = append(ticket.Messages, &entity.TicketMessage{
			ID:         msg.ID,
			SenderRole: msg.SenderRole,
			SenderName: msg.SenderName,
			Body:       msg.Message,
			CreatedAt:  msg.CreatedAt,
		})
	}

	return ticket
}

// mapSlice converts a backend list, skipping null elements.
func mapSlice[D any, E any](items []*D, mapper func(*D) *E) []*E {
	out := make([]*E, 0, len(items))
	for _, item := range items {
		if mapped := mapper(item); mapped != nil {
			out = append(out, mapped)
		}
	}

	return out
}

func toPage[D any, E any](items []*D, pagination paginationDTO, mapper func(*D) *E) *entity.Page[*E] {
	return &entity.Page[*E]{
		Items:      mapSlice(items, mapper),
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		Total:      pagination.Total,
		TotalPages: pagination.TotalPages,
	}
}
