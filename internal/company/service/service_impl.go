package service

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/anilkedia87/gstbill/internal/company/domain"
	"github.com/anilkedia87/gstbill/internal/gst"
)

type service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

func New(p Params) domain.Service {
	return &service{
		log:   p.Log.Named("company.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *service) Get(ctx context.Context) (*domain.Profile, error) {
	return s.repo.Get(ctx)
}

func (s *service) Save(ctx context.Context, in domain.SaveInput) (*domain.Profile, error) {
	if in.Name == "" {
		return nil, domain.ErrNameRequired
	}

	var stateCode gst.StateCode
	if in.GSTIN != "" {
		gstin, err := gst.ParseGSTIN(in.GSTIN)
		if err != nil {
			return nil, err
		}
		in.GSTIN = gstin.String()
		stateCode = gstin.StateCode()
	} else {
		code, err := gst.ParseStateCode(in.StateCode)
		if err != nil {
			return nil, err
		}
		stateCode = code
	}

	profile, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		profile = &domain.Profile{ID: s.genID.Generate().Int64()}
	} else if err != nil {
		return nil, err
	}

	profile.Name = in.Name
	profile.GSTIN = in.GSTIN
	profile.StateCode = string(stateCode)
	profile.StateName, _ = gst.StateName(stateCode)
	profile.Address = in.Address
	profile.Phone = in.Phone
	profile.Email = in.Email
	profile.BankName = in.BankName
	profile.BankAccount = in.BankAccount
	profile.BankIFSC = in.BankIFSC

	if err := s.repo.Upsert(ctx, profile); err != nil {
		s.log.Error("save company profile", zap.Error(err))
		return nil, err
	}
	return profile, nil
}
