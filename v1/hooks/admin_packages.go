package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pritom1343/travelbook-api/models"
	"github.com/pritom1343/travelbook-api/services"
)

type AdminPackageReq struct {
	PackageID             uint64  `json:"package_id"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	Price                 float64 `json:"price"`
	Location              string  `json:"location"`
	Duration              string  `json:"duration"`
	MaxMembers            int     `json:"max_members"`
	Facilities            string  `json:"facilities"`
	HotelName             string  `json:"hotel_name"`
	RoomType              string  `json:"room_type"`
	NumberOfRooms         int     `json:"number_of_rooms"`
	TransportationDetails string  `json:"transportation_details"`
	TourType              string  `json:"tour_type"`
	ImageFilename         string  `json:"image_filename"`
}

func (req *AdminPackageReq) apply(pkg *models.TourPackage) {
	pkg.Title = req.Title
	pkg.Description = req.Description
	pkg.Price = req.Price
	pkg.Location = req.Location
	pkg.Duration = req.Duration
	pkg.Facilities = req.Facilities
	pkg.HotelName = req.HotelName
	pkg.RoomType = req.RoomType
	pkg.NumberOfRooms = req.NumberOfRooms
	pkg.TransportationDetails = req.TransportationDetails
	pkg.TourType = req.TourType
	pkg.ImageFilename = req.ImageFilename
}

func AdminPackageCreate(
	packagesService *services.PackagesService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminPackageReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Create the package
		var pkg models.TourPackage
		req.apply(&pkg)
		pkg.MaxMembers = req.MaxMembers
		if err := packagesService.CreatePackage(&pkg); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the new package
		c.JSON(http.StatusOK, gin.H{
			"data": serializePackage(&pkg, 0, 0),
		})

	}
}

func AdminPackageUpdate(
	packagesService *services.PackagesService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminPackageReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Get the package being edited
		pkg, err := packagesService.GetPackageByID(req.PackageID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if pkg == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "package not found"})
			return
		}

		// Save the edits. The member cap update clamps the booked count
		// when it drops below what has already been sold.
		req.apply(pkg)
		if err := packagesService.UpdatePackage(pkg, req.MaxMembers); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Return the updated package
		c.JSON(http.StatusOK, gin.H{
			"data": serializePackage(pkg, 0, 0),
		})

	}
}

type AdminPackageDeleteReq struct {
	PackageID uint64 `json:"package_id"`
}

func AdminPackageDelete(
	packagesService *services.PackagesService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AdminPackageDeleteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Delete the package
		if err := packagesService.DeletePackage(req.PackageID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Otherwise return something successfully
		c.JSON(http.StatusOK, gin.H{
			"data": gin.H{},
		})

	}
}
