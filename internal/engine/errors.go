package engine

import "errors"

var (
	// ErrDistrictNotFound — округ отсутствует в справочнике; отчет не строится.
	ErrDistrictNotFound = errors.New("district not found")
	// ErrInvalidInput — некорректные входные параметры (размер семьи, доход, диета).
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingData — справочные таблицы не загружены, расчет невозможен.
	ErrMissingData = errors.New("reference data missing")
)
