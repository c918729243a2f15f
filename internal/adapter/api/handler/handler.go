package handler

import (
	"lokapasar/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	productHandler  *ProductHandler
	storeHandler    *StoreHandler
	categoryHandler *CategoryHandler
	cartHandler     *CartHandler
	wishlistHandler *WishlistHandler
	voucherHandler  *VoucherHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	productUseCase *usecase.ProductUseCase,
	storeUseCase *usecase.StoreUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	cartUseCase *usecase.CartUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	voucherUseCase *usecase.VoucherUseCase,
	homeURL string,
) {
	authHandler = NewAuthHandler(authUseCase, homeURL)
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(productUseCase)
	storeHandler = NewStoreHandler(storeUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	voucherHandler = NewVoucherHandler(voucherUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetStoreHandler() *StoreHandler {
	return storeHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetVoucherHandler() *VoucherHandler {
	return voucherHandler
}
