package structure

import (
	"context"

	"github.com/fournilsoft/backoffice-go/internal/domain/structure"
)

type StructureServiceImpl struct {
	structureRepo structure.StructureRepository
}

func NewStructureService(structureRepo structure.StructureRepository) structure.StructureService {
	return &StructureServiceImpl{structureRepo: structureRepo}
}

// ========== CHART OF ACCOUNTS ==========

func (s *StructureServiceImpl) CreateAccount(ctx context.Context, req structure.CreateAccountRequest) (structure.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return structure.AccountResponse{}, err
	}

	account, err := s.structureRepo.CreateAccount(ctx, structure.Account{
		Code:  req.Code,
		Label: req.Label,
		Kind:  structure.AccountKind(req.Kind),
	})
	if err != nil {
		return structure.AccountResponse{}, err
	}

	return mapToAccountResponse(account), nil
}

func (s *StructureServiceImpl) ListAccounts(ctx context.Context) ([]structure.AccountResponse, error) {
	accounts, err := s.structureRepo.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]structure.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, mapToAccountResponse(account))
	}
	return responses, nil
}

func (s *StructureServiceImpl) UpdateAccount(ctx context.Context, req structure.UpdateAccountRequest) (structure.AccountResponse, error) {
	if err := req.Validate(); err != nil {
		return structure.AccountResponse{}, err
	}

	if err := s.structureRepo.UpdateAccount(ctx, req); err != nil {
		return structure.AccountResponse{}, err
	}

	account, err := s.structureRepo.GetAccountByID(ctx, req.ID)
	if err != nil {
		return structure.AccountResponse{}, err
	}
	return mapToAccountResponse(account), nil
}

func (s *StructureServiceImpl) DeleteAccount(ctx context.Context, id string) error {
	return s.structureRepo.DeleteAccount(ctx, id)
}

// ========== PRODUCT FAMILIES ==========

func (s *StructureServiceImpl) CreateProductFamily(ctx context.Context, req structure.CreateProductFamilyRequest) (structure.ProductFamilyResponse, error) {
	if err := req.Validate(); err != nil {
		return structure.ProductFamilyResponse{}, err
	}

	family, err := s.structureRepo.CreateProductFamily(ctx, structure.ProductFamily{Name: req.Name})
	if err != nil {
		return structure.ProductFamilyResponse{}, err
	}

	return structure.ProductFamilyResponse{ID: family.ID, Name: family.Name}, nil
}

func (s *StructureServiceImpl) ListProductFamilies(ctx context.Context) ([]structure.ProductFamilyResponse, error) {
	families, err := s.structureRepo.ListProductFamilies(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]structure.ProductFamilyResponse, 0, len(families))
	for _, family := range families {
		responses = append(responses, structure.ProductFamilyResponse{ID: family.ID, Name: family.Name})
	}
	return responses, nil
}

func (s *StructureServiceImpl) DeleteProductFamily(ctx context.Context, id string) error {
	return s.structureRepo.DeleteProductFamily(ctx, id)
}

// ========== HELPERS ==========

func mapToAccountResponse(account structure.Account) structure.AccountResponse {
	return structure.AccountResponse{
		ID:    account.ID,
		Code:  account.Code,
		Label: account.Label,
		Kind:  string(account.Kind),
	}
}
